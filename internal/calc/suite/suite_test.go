package suite

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"Dunklab/internal/calc/dunk"
	"Dunklab/internal/calc/validate"
	"github.com/gorilla/mux"
	. "github.com/smartystreets/goconvey/convey"
)

var samples = map[string]string{
	"dunk":       `{"height_in":75,"standing_reach_in":100,"rim_height_in":120,"clearance_in":6}`,
	"vertical":   `{"method":"hangTime","hang_time_s":0.8,"body_weight_lb":180}`,
	"reach":      `{"mode":"estimate","height_in":72,"gender":"male","sport":"basketball"}`,
	"approach":   `{"standing_jump_in":20,"approach_jump_in":30,"dominant_leg":"left","experience_level":"advanced","sport":"basketball"}`,
	"fatigue":    `{"resting_jump_in":30,"fatigue_jump_in":24,"activity_type":"game","duration_min":60,"intensity":"high","rest_time_min":10}`,
	"potential":  `{"current_vertical_in":20,"age":22,"training_experience":"beginner","athletic_background":"high_school","body_type":"average","leg_length":"average","fast_twitch":"moderate","injury_history":"none"}`,
	"bodyweight": `{"height_in":75,"current_weight_lb":200,"current_vertical_in":24,"body_fat_pct":15,"gender":"male","age":25,"sport":"basketball","training_goal":"balanced","muscle_type":"average"}`,
}

func TestRegistry(t *testing.T) {
	Convey("Given the full registry", t, func() {
		r := New()

		Convey("Then all seven calculators are registered in display order", func() {
			So(r.Slugs(), ShouldResemble, []string{"dunk", "vertical", "reach", "approach", "fatigue", "potential", "bodyweight"})
		})

		Convey("Then every calculator runs its sample input", func() {
			for _, slug := range r.Slugs() {
				out, err := r.Run(slug, []byte(samples[slug]))
				So(err, ShouldBeNil)
				So(out.Slug, ShouldEqual, slug)
				So(out.Title, ShouldNotBeEmpty)
				So(out.InputRows, ShouldNotBeEmpty)
				So(out.ResultRows, ShouldNotBeEmpty)
			}
		})

		Convey("Then the dunk outcome carries the typed result", func() {
			out, err := r.Run("dunk", []byte(samples["dunk"]))
			So(err, ShouldBeNil)
			res, ok := out.Result.(dunk.Result)
			So(ok, ShouldBeTrue)
			So(res.RequiredVerticalIn, ShouldEqual, 26)
			jump, ok := out.JumpHeight()
			So(ok, ShouldBeTrue)
			So(jump, ShouldEqual, 26)
		})

		Convey("Then results without a single jump report none", func() {
			out, err := r.Run("fatigue", []byte(samples["fatigue"]))
			So(err, ShouldBeNil)
			_, ok := out.JumpHeight()
			So(ok, ShouldBeFalse)
		})

		Convey("Then an unknown slug is rejected", func() {
			_, err := r.Run("teleport", []byte(`{}`))
			So(errors.Is(err, ErrUnknownCalculator), ShouldBeTrue)
		})

		Convey("Then malformed JSON is a bad payload", func() {
			_, err := r.Run("dunk", []byte(`{"height_in":`))
			So(errors.Is(err, ErrBadPayload), ShouldBeTrue)
		})

		Convey("Then out-of-range input is a validation error", func() {
			_, err := r.Run("dunk", []byte(`{"height_in":10}`))
			So(errors.Is(err, validate.ErrInvalidInput), ShouldBeTrue)
		})
	})
}

func TestFail(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{ErrUnknownCalculator, http.StatusNotFound},
		{ErrBadPayload, http.StatusBadRequest},
		{&validate.Error{Fields: []validate.FieldError{{Field: "x", Message: "bad"}}}, http.StatusUnprocessableEntity},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, c := range cases {
		w := httptest.NewRecorder()
		Fail(w, c.err)
		if w.Code != c.code {
			t.Errorf("Fail(%v) status = %d, want %d", c.err, w.Code, c.code)
		}
	}
}

func TestLoad(t *testing.T) {
	Convey("Given a request routed with a slug", t, func() {
		r := New()
		req := httptest.NewRequest(http.MethodPost, "/api/tools/approach/report", strings.NewReader(samples["approach"]))
		req = mux.SetURLVars(req, map[string]string{"slug": "approach"})

		out, err := r.Load(req)
		So(err, ShouldBeNil)
		So(out.Slug, ShouldEqual, "approach")
		So(out.Warnings, ShouldBeEmpty)
	})
}

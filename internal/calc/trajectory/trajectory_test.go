package trajectory

import (
	"bytes"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"Dunklab/internal/calc/kinematics"
	"Dunklab/internal/calc/suite"
	"github.com/gorilla/mux"
	. "github.com/smartystreets/goconvey/convey"
)

var pngMagic = []byte("\x89PNG")

func TestPoints(t *testing.T) {
	Convey("Given a 26\" jump sampled at an odd count", t, func() {
		pts, err := Points(26, 61)
		So(err, ShouldBeNil)
		So(pts, ShouldHaveLength, 61)

		Convey("Then the path starts and ends on the ground", func() {
			So(pts[0].T, ShouldEqual, 0)
			So(pts[0].Y, ShouldEqual, 0)
			So(pts[60].T, ShouldAlmostEqual, kinematics.HangTime(26), 1e-9)
			So(pts[60].Y, ShouldAlmostEqual, 0, 1e-6)
		})

		Convey("Then the midpoint is the peak", func() {
			So(pts[30].Y, ShouldAlmostEqual, 26, 1e-6)
			for _, p := range pts {
				So(p.Y, ShouldBeLessThanOrEqualTo, 26+1e-6)
			}
		})
	})

	Convey("Given no jump", t, func() {
		_, err := Points(0, 10)
		So(errors.Is(err, ErrNoJump), ShouldBeTrue)
	})

	Convey("Given fewer than two samples", t, func() {
		pts, err := Points(10, 1)
		So(err, ShouldBeNil)
		So(pts, ShouldHaveLength, 2)
	})
}

func TestSymmetry(t *testing.T) {
	pts, err := Points(30, 21)
	if err != nil {
		t.Fatal(err)
	}
	for i := range pts {
		j := len(pts) - 1 - i
		if math.Abs(pts[i].Y-pts[j].Y) > 1e-6 {
			t.Errorf("y[%d]=%v, y[%d]=%v: path not symmetric", i, pts[i].Y, j, pts[j].Y)
		}
	}
}

func TestRender(t *testing.T) {
	Convey("Given a 30\" jump", t, func() {
		data, err := Render(30, "Vertical Jump")
		So(err, ShouldBeNil)
		So(bytes.HasPrefix(data, pngMagic), ShouldBeTrue)
	})
}

func TestHandler_Draw(t *testing.T) {
	Convey("Given the trajectory handler", t, func() {
		h := &Handler{Suite: suite.New()}
		post := func(slug, body string) *httptest.ResponseRecorder {
			req := httptest.NewRequest(http.MethodPost, "/api/tools/"+slug+"/trajectory", strings.NewReader(body))
			req = mux.SetURLVars(req, map[string]string{"slug": slug})
			w := httptest.NewRecorder()
			h.Draw(w, req)
			return w
		}

		Convey("A vertical jump draws a PNG", func() {
			w := post("vertical", `{"method":"measurement","direct_measurement_in":28,"body_weight_lb":180}`)
			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Header().Get("Content-Type"), ShouldEqual, "image/png")
			So(bytes.HasPrefix(w.Body.Bytes(), pngMagic), ShouldBeTrue)
		})

		Convey("A calculator without a jump path is a 404", func() {
			w := post("fatigue", `{"resting_jump_in":30,"fatigue_jump_in":24,"activity_type":"game","duration_min":60,"intensity":"high","rest_time_min":10}`)
			So(w.Code, ShouldEqual, http.StatusNotFound)
		})

		Convey("A dunk that needs no jump has nothing to draw", func() {
			w := post("dunk", `{"height_in":84,"standing_reach_in":126,"rim_height_in":120,"clearance_in":6}`)
			So(w.Code, ShouldEqual, http.StatusUnprocessableEntity)
		})
	})
}

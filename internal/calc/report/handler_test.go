package report

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"Dunklab/internal/calc/suite"
	"github.com/gorilla/mux"
	. "github.com/smartystreets/goconvey/convey"
)

func routed(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	return mux.SetURLVars(req, map[string]string{"slug": "dunk"})
}

func TestRender(t *testing.T) {
	Convey("Given a dunk outcome with a warning", t, func() {
		out, err := suite.New().Run("dunk", []byte(`{"height_in":75,"standing_reach_in":72,"rim_height_in":120,"clearance_in":6}`))
		So(err, ShouldBeNil)
		So(out.Warnings, ShouldNotBeEmpty)

		body, err := Render(out, time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC))

		Convey("Then a PDF document is produced", func() {
			So(err, ShouldBeNil)
			So(bytes.HasPrefix(body, []byte("%PDF")), ShouldBeTrue)
		})
	})
}

func TestHandler_Generate(t *testing.T) {
	Convey("Given the report handler", t, func() {
		h := &Handler{Suite: suite.New()}

		Convey("When posting valid dunk input", func() {
			w := httptest.NewRecorder()
			h.Generate(w, routed(http.MethodPost, "/api/tools/dunk/report",
				`{"height_in":75,"standing_reach_in":100,"rim_height_in":120,"clearance_in":6}`))

			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Header().Get("Content-Type"), ShouldEqual, "application/pdf")
			So(w.Header().Get("Content-Disposition"), ShouldContainSubstring, "dunk-report.pdf")
		})

		post := func(body string) *httptest.ResponseRecorder {
			w := httptest.NewRecorder()
			h.Generate(w, routed(http.MethodPost, "/api/tools/dunk/report", body))
			return w
		}

		Convey("When the input is invalid no PDF is produced", func() {
			So(post(`{"height_in":5}`).Code, ShouldEqual, http.StatusUnprocessableEntity)
			So(post(`not json`).Code, ShouldEqual, http.StatusBadRequest)
		})
	})
}

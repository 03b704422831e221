package version

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anisan-cli/anidex/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestCompare(t *testing.T) {
	Convey("Compare", t, func() {
		So(must(Compare("1.2.3", "1.2.3")), ShouldEqual, 0)
		So(must(Compare("v1.3.0", "1.2.9")), ShouldEqual, 1)
		So(must(Compare("0.9.0", "1.0.0")), ShouldEqual, -1)

		So(must(Compare("1.2", "1.2.0")), ShouldEqual, 0)
		So(must(Compare("v1.2.3-rc1", "1.2.3")), ShouldEqual, -1)
		So(must(Compare("1.10.0", "1.9.0")), ShouldEqual, 1)

		_, err := Compare("latest", "1.0.0")
		So(err, ShouldNotBeNil)
		_, err = Compare("1.2.3.4", "1.0.0")
		So(err, ShouldNotBeNil)
	})
}

func TestLatest(t *testing.T) {
	Convey("Given a release feed", t, func() {
		calls := 0
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			_, _ = w.Write([]byte(`{"tag_name":"v2.1.0"}`))
		}))
		Reset(srv.Close)

		previous := ReleasesURL
		ReleasesURL = srv.URL
		Reset(func() { ReleasesURL = previous })

		Convey("The tag is stripped of its prefix and cached", func() {
			ver, err := Latest(context.Background())
			So(err, ShouldBeNil)
			So(ver, ShouldEqual, "2.1.0")

			ver, err = Latest(context.Background())
			So(err, ShouldBeNil)
			So(ver, ShouldEqual, "2.1.0")
			So(calls, ShouldEqual, 1)
		})
	})
}

func must(n int, err error) int {
	if err != nil {
		panic(err)
	}
	return n
}

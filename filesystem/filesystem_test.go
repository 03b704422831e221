package filesystem

import (
	"os"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestBackend(t *testing.T) {
	Convey("The backend can be swapped", t, func() {
		SetOsFs()
		So(API().Name(), ShouldEqual, "OsFs")

		SetMemMapFs()
		So(API().Name(), ShouldEqual, "MemMapFS")
	})

	Convey("Given the in-memory backend", t, func() {
		SetMemMapFs()

		Convey("Gache writes land in it", func() {
			var fs GacheFs
			So(fs.MkdirAll("/cache", 0o755), ShouldBeNil)

			f, err := fs.OpenFile("/cache/records.json", os.O_CREATE|os.O_WRONLY, 0o644)
			So(err, ShouldBeNil)
			_, err = f.Write([]byte(`{"records":{}}`))
			So(err, ShouldBeNil)
			So(f.Close(), ShouldBeNil)

			data, err := API().ReadFile("/cache/records.json")
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, `{"records":{}}`)
		})

		Convey("Swapping again starts empty", func() {
			So(API().WriteFile("/a", []byte("a"), 0o644), ShouldBeNil)
			SetMemMapFs()

			exists, err := API().Exists("/a")
			So(err, ShouldBeNil)
			So(exists, ShouldBeFalse)
		})
	})
}

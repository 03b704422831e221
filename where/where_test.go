package where

import (
	"path/filepath"
	"testing"

	"github.com/anisan-cli/anidex/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Path functions", t, func() {
		Convey("Config()", func() {
			path := Config()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Config() honors the override variable", func() {
			t.Setenv(EnvConfigPath, filepath.Join("custom", "anidex"))
			path := Config()
			So(path, ShouldEqual, filepath.Join("custom", "anidex"))
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Cache()", func() {
			path := Cache()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Details() lives under Cache()", func() {
			path := Details()
			So(filepath.Dir(path), ShouldEqual, Cache())
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Logs()", func() {
			path := Logs()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Files are not created eagerly", func() {
			So(lo.Must(filesystem.API().Exists(History())), ShouldBeFalse)
			So(lo.Must(filesystem.API().Exists(Queries())), ShouldBeFalse)
		})
	})
}

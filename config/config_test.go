package config

import (
	"testing"
	"time"

	"github.com/anisan-cli/anidex/filesystem"
	"github.com/anisan-cli/anidex/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			err := Setup()
			So(err, ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			So(Setup(), ShouldBeNil)
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
			So(viper.GetInt(key.BrowsePageSize), ShouldEqual, 20)
			So(viper.GetString(key.AnilistEndpoint), ShouldEqual, "https://graphql.anilist.co")
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			So(EnvKeyReplacer.Replace("browse.page_size"), ShouldEqual, "browse_page_size")
		})

		Convey("Env names carry the application prefix", func() {
			f := Default[key.SearchThrottleMs]
			So(f.Env(), ShouldEqual, "ANIDEX_SEARCH_THROTTLE_MS")
		})

		Convey("Environment variables override defaults", func() {
			t.Setenv("ANIDEX_BROWSE_PAGE_SIZE", "7")
			So(Setup(), ShouldBeNil)
			So(PageSize(), ShouldEqual, 7)
		})

		Convey("Fields describe themselves", func() {
			f := Default[key.BrowseHideAdult]
			So(f.Section(), ShouldEqual, "browse")
			So(f.Type(), ShouldEqual, "bool")
			So(f.Pretty(), ShouldContainSubstring, "ANIDEX_BROWSE_HIDE_ADULT")
			So(len(EnvExposed), ShouldEqual, len(Default))
		})

		Convey("Derived values are clamped", func() {
			So(Setup(), ShouldBeNil)
			viper.Set(key.BrowsePageSize, 0)
			viper.Set(key.SearchThrottleMs, -5)
			Reset(func() {
				viper.Set(key.BrowsePageSize, 20)
				viper.Set(key.SearchThrottleMs, 300)
			})

			So(PageSize(), ShouldEqual, 1)
			So(ThrottleInterval(), ShouldEqual, time.Duration(0))
		})

		Convey("The throttle interval defaults to 300ms", func() {
			So(Setup(), ShouldBeNil)
			So(ThrottleInterval(), ShouldEqual, 300*time.Millisecond)
		})
	})
}

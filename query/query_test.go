package query

import (
	"testing"

	"github.com/anisan-cli/anidex/filesystem"
	"github.com/anisan-cli/anidex/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
	viper.Set(key.SearchShowQuerySuggestions, true)
}

func TestQuery(t *testing.T) {
	Convey("Given query history", t, func() {
		So(Remember("naruto", 1), ShouldBeNil)
		So(Remember("bleach", 10), ShouldBeNil)
		So(Remember("Black Clover ", 3), ShouldBeNil)
		Reset(func() {
			for _, q := range []string{"naruto", "bleach", "black clover"} {
				_ = Forget(q)
			}
		})

		Convey("Suggestions are sorted by rank", func() {
			s := SuggestMany("bl")
			So(s, ShouldResemble, []string{"bleach", "black clover"})
			So(Suggest("bl").MustGet(), ShouldEqual, "bleach")
		})

		Convey("Remembering again raises the rank and refreshes suggestions", func() {
			So(SuggestMany("bl")[0], ShouldEqual, "bleach")
			So(Remember("black clover", 20), ShouldBeNil)
			So(SuggestMany("bl")[0], ShouldEqual, "black clover")
		})

		Convey("The exact query is not suggested back", func() {
			So(SuggestMany("naruto"), ShouldBeEmpty)
		})

		Convey("Blank queries are ignored", func() {
			So(Remember("   ", 5), ShouldBeNil)
			So(Top(10), ShouldResemble, []string{"bleach", "black clover", "naruto"})
		})

		Convey("Top is bounded", func() {
			So(Top(1), ShouldResemble, []string{"bleach"})
		})

		Convey("Suggestions can be disabled", func() {
			viper.Set(key.SearchShowQuerySuggestions, false)
			Reset(func() { viper.Set(key.SearchShowQuerySuggestions, true) })
			So(SuggestMany("bl"), ShouldBeEmpty)
			So(Suggest("bl").IsAbsent(), ShouldBeTrue)
		})

		Convey("It sanitizes input", func() {
			So(sanitize("  NARUTO  "), ShouldEqual, "naruto")
		})
	})
}

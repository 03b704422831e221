package icon

import (
	"testing"

	"github.com/anisan-cli/anidex/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestGet(t *testing.T) {
	Convey("Given every registered icon", t, func() {
		Convey("It renders for each variant", func() {
			for _, variant := range AvailableVariants() {
				Convey("variant="+variant, func() {
					viper.Set(key.IconsVariant, variant)
					for i := range icons {
						So(Get(i), ShouldNotBeEmpty)
					}
				})
			}
		})

		Convey("An unknown variant falls back to plain text", func() {
			viper.Set(key.IconsVariant, "")
			plain := icons[Anime].plain
			So(Get(Anime), ShouldEqual, plain)
		})

		Convey("Variants are listed in order", func() {
			So(AvailableVariants(), ShouldResemble, []string{"emoji", "kaomoji", "nerd", "plain", "squares"})
		})

		Convey("An unregistered icon renders as nothing", func() {
			viper.Set(key.IconsVariant, "plain")
			So(Get(Icon(0)), ShouldBeEmpty)
		})
	})
}

package icon

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/ytui-cli/ytui/key"
)

func TestGet(t *testing.T) {
	Convey("Given the plain icons variant", t, func() {
		viper.Set(key.IconsVariant, "plain")

		Convey("Every registered icon should render", func() {
			for id := range icons {
				So(Get(id), ShouldNotBeEmpty)
			}
		})
	})

	Convey("Given an unknown variant", t, func() {
		viper.Set(key.IconsVariant, "bogus")

		Convey("Rendering should fall back to plain", func() {
			So(Get(Fail), ShouldEqual, "x")
		})
	})
}

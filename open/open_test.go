package open

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestStart(t *testing.T) {
	Convey("Non web links are refused before anything is launched", t, func() {
		So(Start("file:///etc/passwd"), ShouldNotBeNil)
		So(Start("javascript:alert(1)"), ShouldNotBeNil)
		So(Start("://broken"), ShouldNotBeNil)
	})
}

package auth

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/zalando/go-keyring"
)

func init() {
	keyring.MockInit()
}

func TestToken(t *testing.T) {
	Convey("Given an empty keyring", t, func() {
		So(DeleteToken(), ShouldBeNil)

		Convey("No token is found", func() {
			_, err := GetToken()
			So(err, ShouldEqual, keyring.ErrNotFound)
		})

		Convey("A blank token is rejected", func() {
			So(SetToken("  "), ShouldEqual, ErrEmptyToken)
		})

		Convey("A saved token is trimmed and read back", func() {
			So(SetToken(" abc \n"), ShouldBeNil)
			token, err := GetToken()
			So(err, ShouldBeNil)
			So(token, ShouldEqual, "abc")

			Convey("And deleting it twice is fine", func() {
				So(DeleteToken(), ShouldBeNil)
				So(DeleteToken(), ShouldBeNil)
			})
		})
	})
}

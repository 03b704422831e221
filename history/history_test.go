package history

import (
	"testing"
	"time"

	"github.com/anisan-cli/anidex/anilist"
	"github.com/anisan-cli/anidex/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestHistory(t *testing.T) {
	Convey("Given a media and a character", t, func() {
		media := &anilist.Media{ID: 21, Type: "ANIME", Title: anilist.Title{English: "One Piece"}}
		character := &anilist.Character{ID: 40, Name: anilist.Name{Full: "Monkey D. Luffy"}}

		Reset(func() {
			_ = Remove(FromMedia(media))
			_ = Remove(FromCharacter(character))
		})

		Convey("When saving the media", func() {
			So(Save(FromMedia(media)), ShouldBeNil)

			Convey("Then it is stored under its kind and id", func() {
				saved, err := Get()
				So(err, ShouldBeNil)
				So(saved, ShouldContainKey, "media:21")
				So(saved["media:21"].Title, ShouldEqual, "One Piece")
				So(saved["media:21"].URL, ShouldEqual, "https://anilist.co/anime/21")
				So(saved["media:21"].Opened, ShouldEqual, 1)
			})

			Convey("And reopening bumps the counter", func() {
				So(Save(FromMedia(media)), ShouldBeNil)
				saved, err := Get()
				So(err, ShouldBeNil)
				So(saved["media:21"].Opened, ShouldEqual, 2)
			})

			Convey("And the latest opened comes first", func() {
				time.Sleep(2 * time.Millisecond)
				So(Save(FromCharacter(character)), ShouldBeNil)

				recent, err := Recent(0)
				So(err, ShouldBeNil)
				So(recent, ShouldHaveLength, 2)
				So(recent[0].Kind, ShouldEqual, KindCharacter)

				one, err := Recent(1)
				So(err, ShouldBeNil)
				So(one, ShouldHaveLength, 1)
			})

			Convey("And removing it forgets it", func() {
				So(Remove(FromMedia(media)), ShouldBeNil)
				saved, err := Get()
				So(err, ShouldBeNil)
				So(saved, ShouldNotContainKey, "media:21")
			})
		})
	})
}

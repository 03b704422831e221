package cache

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/anisan-cli/anidex/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCollectGarbage(t *testing.T) {
	Convey("Given a cache directory with fresh and stale files", t, func() {
		filesystem.SetMemMapFs()
		fs := filesystem.API()

		dir := "/cache/details"
		fresh := filepath.Join(dir, "media.json")
		stale := filepath.Join(dir, "character.json")

		So(fs.WriteFile(fresh, []byte("{}"), 0o644), ShouldBeNil)
		So(fs.WriteFile(stale, []byte("{}"), 0o644), ShouldBeNil)

		old := time.Now().Add(-2 * TTL)
		So(fs.Chtimes(stale, old, old), ShouldBeNil)

		Convey("Only the stale file is removed", func() {
			removed, err := CollectGarbage(dir, TTL)
			So(err, ShouldBeNil)
			So(removed, ShouldEqual, 1)

			exists, _ := fs.Exists(fresh)
			So(exists, ShouldBeTrue)
			exists, _ = fs.Exists(stale)
			So(exists, ShouldBeFalse)
		})

		Convey("A missing directory is not an error", func() {
			removed, err := CollectGarbage("/nowhere", TTL)
			So(err, ShouldBeNil)
			So(removed, ShouldEqual, 0)
		})
	})
}

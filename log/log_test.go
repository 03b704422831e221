package log

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/anisan-cli/anidex/filesystem"
	"github.com/anisan-cli/anidex/key"
	"github.com/anisan-cli/anidex/where"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Given logging is disabled", t, func() {
		viper.Set(key.LogsWrite, false)
		So(Setup(), ShouldBeNil)

		Convey("Structured loggers discard everything", func() {
			entry, ok := Component("test").(*logrus.Entry)
			So(ok, ShouldBeTrue)
			So(entry.Logger, ShouldEqual, discard)
			So(entry.Data["component"], ShouldEqual, "test")
		})
	})

	Convey("Given logging is enabled", t, func() {
		viper.Set(key.LogsWrite, true)
		viper.Set(key.LogsLevel, "debug")
		Reset(func() { viper.Set(key.LogsWrite, false) })

		So(Setup(), ShouldBeNil)

		Convey("Today's log file is created and written", func() {
			Component("test").Info("hello")
			path := filepath.Join(where.Logs(), time.Now().Format("2006-01-02")+".log")
			So(lo.Must(filesystem.API().Exists(path)), ShouldBeTrue)
			So(string(lo.Must(filesystem.API().ReadFile(path))), ShouldContainSubstring, "hello")
		})

		Convey("The configured level is applied", func() {
			So(logrus.GetLevel(), ShouldEqual, logrus.DebugLevel)
		})
	})
}

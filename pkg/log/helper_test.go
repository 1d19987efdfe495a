package log

import (
	"bytes"
	"io"
	"os"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
)

// resetForTest 패키지 전역 상태와 logrus 전역 설정을 초기화하여 테스트 간 간섭을 막는다.
func resetForTest(t *testing.T) *bytes.Buffer {
	t.Helper()

	setupOnce = sync.Once{}
	globalCloser = nil
	globalSetupErr = nil

	buf := &bytes.Buffer{}
	prevConsole := consoleOutput
	consoleOutput = buf

	t.Cleanup(func() {
		consoleOutput = prevConsole
		logrus.StandardLogger().ReplaceHooks(make(logrus.LevelHooks))
		logrus.SetOutput(os.Stderr)
		logrus.SetLevel(logrus.InfoLevel)
		logrus.SetReportCaller(false)
		logrus.SetFormatter(&logrus.TextFormatter{})
	})

	return buf
}

type failingWriter struct{}

func (failingWriter) Write(_ []byte) (int, error) {
	return 0, io.ErrClosedPipe
}

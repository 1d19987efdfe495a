package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	// 생성되는 로그 파일의 기본 확장자
	fileExt = "log"

	// 기본 로그 로테이션 정책
	defaultMaxSizeMB  = 10
	defaultMaxBackups = 5
)

var (
	// Setup()이 프로세스 생명주기 동안 단 한 번만 실행되도록 보장합니다.
	setupOnce sync.Once

	// 최초 Setup() 결과. 재호출 시 동일한 값을 반환한다.
	globalCloser   io.Closer
	globalSetupErr error

	// 콘솔 로그 출력 대상. 명령의 결과는 표준 출력으로 나가므로 로그는 표준 에러로 보낸다.
	consoleOutput io.Writer = os.Stderr
)

// Setup 전역 로깅 시스템을 초기화합니다.
//
// 반환된 Closer는 defer를 통해 반드시 해제해야 합니다.
func Setup(opts Options) (io.Closer, error) {
	setupOnce.Do(func() {
		globalCloser, globalSetupErr = setupInternal(opts)
	})

	return globalCloser, globalSetupErr
}

func setupInternal(opts Options) (io.Closer, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("유효하지 않은 로그 설정: %w", err)
	}

	level := opts.Level
	if level == 0 {
		level = InfoLevel
	}
	logrus.SetLevel(level)
	logrus.SetReportCaller(opts.ReportCaller)

	// 기본 출력은 버리고 모든 기록을 hook에 위임한다.
	logrus.SetFormatter(&silentFormatter{})
	logrus.SetOutput(io.Discard)

	h := &hook{
		formatter: newTextFormatter(opts.CallerPathPrefix),
	}
	if opts.EnableConsoleLog {
		h.consoleWriter = consoleOutput
	}

	var closers []io.Closer
	if opts.Dir != "" {
		if err := os.MkdirAll(opts.Dir, 0755); err != nil {
			return nil, fmt.Errorf("로그 디렉토리 생성 실패: %w", err)
		}

		maxSize := opts.MaxSizeMB
		if maxSize == 0 {
			maxSize = defaultMaxSizeMB
		}
		maxBackups := opts.MaxBackups
		if maxBackups == 0 {
			maxBackups = defaultMaxBackups
		}

		newLogger := func(suffix string) *lumberjack.Logger {
			name := opts.Name
			if suffix != "" {
				name += "." + suffix
			}
			l := &lumberjack.Logger{
				Filename:   filepath.Join(opts.Dir, fmt.Sprintf("%s.%s", name, fileExt)),
				MaxSize:    maxSize,
				MaxBackups: maxBackups,
				MaxAge:     opts.MaxAge,
				LocalTime:  true,
			}
			closers = append(closers, l)
			return l
		}

		h.mainWriter = newLogger("")
		if opts.EnableCriticalLog {
			h.criticalWriter = newLogger("critical")
		}
		if opts.EnableVerboseLog {
			h.verboseWriter = newLogger("verbose")
		}
	}

	logrus.AddHook(h)

	c := &closer{
		closers: closers,
		hook:    h,
	}

	// Fatal 로그로 os.Exit이 호출되기 직전에 파일 버퍼를 정리한다.
	logrus.RegisterExitHandler(func() {
		_ = c.Close()
	})

	return c, nil
}

func newTextFormatter(callerPathPrefix string) *logrus.TextFormatter {
	return &logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
		CallerPrettyfier: func(frame *runtime.Frame) (function string, file string) {
			function = frame.Function + "(line:" + strconv.Itoa(frame.Line) + ")"
			if callerPathPrefix != "" {
				if cut, found := strings.CutPrefix(function, callerPathPrefix); found {
					function = "..." + cut
				}
			}
			return
		},
	}
}

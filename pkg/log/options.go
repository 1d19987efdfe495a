package log

import (
	"fmt"
	"os"
)

// Options 로거 설정을 위한 구조체입니다.
type Options struct {
	Name  string // 로그 파일명 생성에 사용될 애플리케이션 식별자
	Level Level  // 로그 레벨

	// Dir 로그 파일이 저장될 디렉토리 경로입니다.
	// 비어 있으면 파일 로그를 남기지 않습니다. (CLI 단발 실행 시 작업 디렉토리를 오염시키지 않기 위함)
	Dir string

	MaxAge     int // 오래된 로그 삭제 기준일 (일 단위, 0: 삭제 안 함)
	MaxSizeMB  int // 로그 파일 최대 크기 (MB, 0: 기본값 사용)
	MaxBackups int // 최대 백업 파일 수 (0: 기본값 사용)

	EnableCriticalLog bool // ERROR 이상의 로그를 별도 파일로 분리 저장할지 여부 (Dir 필요)
	EnableVerboseLog  bool // DEBUG 이하의 로그를 별도 파일로 분리 저장할지 여부 (Dir 필요)
	EnableConsoleLog  bool // 표준 에러(Stderr)에도 로그를 출력할지 여부

	ReportCaller     bool   // 로그를 호출한 함수와 라인 번호를 기록할지 여부
	CallerPathPrefix string // 호출자 함수 경로에서 잘라낼 접두사 (예: "github.com/darkkaiser")
}

// Validate Options 필드 값이 유효한지 검증합니다.
func (opts *Options) Validate() error {
	if opts.Name == "" {
		return fmt.Errorf("애플리케이션 식별자(Name)가 설정되지 않았습니다")
	}

	if opts.Dir != "" {
		if info, err := os.Stat(opts.Dir); err == nil && !info.IsDir() {
			return fmt.Errorf("로그 디렉토리 경로(%s)가 이미 파일로 존재합니다", opts.Dir)
		}
	}

	if opts.MaxAge < 0 {
		return fmt.Errorf("MaxAge는 0 이상이어야 합니다: %d", opts.MaxAge)
	}
	if opts.MaxSizeMB < 0 {
		return fmt.Errorf("MaxSizeMB는 0 이상이어야 합니다: %d", opts.MaxSizeMB)
	}
	if opts.MaxBackups < 0 {
		return fmt.Errorf("MaxBackups는 0 이상이어야 합니다: %d", opts.MaxBackups)
	}

	if opts.Dir == "" && (opts.EnableCriticalLog || opts.EnableVerboseLog) {
		return fmt.Errorf("로그 파일 분리(Critical/Verbose) 옵션은 로그 디렉토리(Dir)가 설정된 경우에만 사용할 수 있습니다")
	}

	return nil
}

// NewProductionOptions 일반 실행에 사용하는 로그 설정을 반환합니다.
// 경고 이상의 로그만 콘솔에 출력하여 명령의 표준 출력 결과를 방해하지 않습니다.
func NewProductionOptions(appName, dir string) Options {
	return Options{
		Name:  appName,
		Level: WarnLevel,
		Dir:   dir,

		MaxAge:     30,
		MaxSizeMB:  10,
		MaxBackups: 5,

		EnableCriticalLog: dir != "",
		EnableConsoleLog:  true,

		ReportCaller:     false,
		CallerPathPrefix: "github.com/darkkaiser",
	}
}

// NewDevelopmentOptions --debug 실행에 사용하는 로그 설정을 반환합니다.
func NewDevelopmentOptions(appName, dir string) Options {
	return Options{
		Name:  appName,
		Level: TraceLevel,
		Dir:   dir,

		MaxAge:     1,
		MaxSizeMB:  10,
		MaxBackups: 2,

		EnableVerboseLog: dir != "",
		EnableConsoleLog: true,

		ReportCaller:     true,
		CallerPathPrefix: "github.com/darkkaiser",
	}
}

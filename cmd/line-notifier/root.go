package main

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/darkkaiser/line-notifier/internal/config"
	apperrors "github.com/darkkaiser/line-notifier/internal/pkg/errors"
	applog "github.com/darkkaiser/line-notifier/pkg/log"
	"github.com/spf13/cobra"
)

// 프로세스 종료 코드
const (
	exitCodeFailure = 1 // 전송 실패, 네트워크 오류 등
	exitCodeConfig  = 2 // 설정 또는 입력값 오류
)

// commandContext 하위 명령이 공유하는 설정과 로거 초기화 상태
type commandContext struct {
	configFlag *string
	debugFlag  *bool

	configOnce sync.Once
	config     *config.AppConfig
	configErr  error
}

func newCommandContext(configFlag *string, debugFlag *bool) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		debugFlag:  debugFlag,
	}
}

// ensureConfig 설정을 한 번만 로드합니다. --config가 없으면 기본 설정 파일(없어도 됨)을 사용합니다.
func (c *commandContext) ensureConfig() (*config.AppConfig, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}

		var cfg *config.AppConfig
		var err error
		if path == "" {
			cfg, err = config.Load()
		} else {
			cfg, err = config.LoadWithFile(path)
		}
		if err != nil {
			c.configErr = err
			return
		}

		if c.debugFlag != nil && *c.debugFlag {
			cfg.Debug = true
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// setupLogging 설정에 따라 전역 로거를 초기화합니다.
func (c *commandContext) setupLogging(cfg *config.AppConfig) (io.Closer, error) {
	var opts applog.Options
	if cfg.Debug {
		opts = applog.NewDevelopmentOptions(config.AppName, cfg.Log.Dir)
	} else {
		opts = applog.NewProductionOptions(config.AppName, cfg.Log.Dir)
	}
	opts.MaxAge = cfg.Log.MaxAge

	closer, err := applog.Setup(opts)
	if err != nil {
		return nil, err
	}
	applog.SetDebugMode(cfg.Debug)

	return closer, nil
}

func newRootCommand() *cobra.Command {
	var configFlag string
	var debugFlag bool

	ctx := newCommandContext(&configFlag, &debugFlag)

	rootCmd := &cobra.Command{
		Use:           config.AppName,
		Short:         "LINE Notify 알림 전송 도구",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "설정 파일 경로 (기본값: ./"+config.DefaultFilename+")")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "디버그 로그 출력")

	rootCmd.AddCommand(newSendCommand(ctx))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

// reportError 명령 실행 에러를 출력하고 에러 종류에 맞는 종료 코드를 반환합니다.
//
// 설정 파일, 환경 변수, 명령행 인자를 고쳐야 하는 에러는 exitCodeConfig를 반환합니다.
func reportError(w io.Writer, err error) int {
	errType := apperrors.UnderlyingType(err)

	fmt.Fprintln(w, err)
	applog.WithComponentAndFields("cli", applog.Fields{
		"error_type": errType.String(),
		"root_cause": apperrors.RootCause(err),
	}).Debug("명령 실행 실패")

	switch errType {
	case apperrors.InvalidInput, apperrors.NotFound, apperrors.ParsingFailed:
		return exitCodeConfig
	default:
		return exitCodeFailure
	}
}

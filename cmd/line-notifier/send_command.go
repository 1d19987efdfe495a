package main

import (
	"context"
	"fmt"
	"io"

	"github.com/darkkaiser/line-notifier/internal/config"
	"github.com/darkkaiser/line-notifier/internal/notify"
	apperrors "github.com/darkkaiser/line-notifier/internal/pkg/errors"
	applog "github.com/darkkaiser/line-notifier/pkg/log"
	"github.com/spf13/cobra"
)

// sendFlags send 명령의 명령행 인자
type sendFlags struct {
	token            string
	message          string
	imageThumbnail   string
	imageFullsize    string
	imageFile        string
	stickerPackageID int
	stickerID        int
}

func newSendCommand(ctx *commandContext) *cobra.Command {
	var flags sendFlags

	cmd := &cobra.Command{
		Use:   "send",
		Short: "알림 메시지 전송",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			closer, err := ctx.setupLogging(cfg)
			if err != nil {
				return err
			}
			defer closer.Close()

			req := buildRequest(cmd, cfg, flags)

			sendCtx := cmd.Context()
			if cfg.HTTP.Timeout > 0 {
				var cancel context.CancelFunc
				sendCtx, cancel = context.WithTimeout(sendCtx, cfg.HTTP.Timeout)
				defer cancel()
			}

			result, err := req.Send(sendCtx)
			if err != nil {
				return err
			}

			printResult(cmd.OutOrStdout(), result)

			if !result.OK {
				return apperrors.Newf(apperrors.ExecutionFailed, "알림 전송이 거절되었습니다 (status code: %d)", result.StatusCode)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.message, "message", "m", "", "전송할 메시지 (필수)")
	f.StringVarP(&flags.token, "token", "t", "", "LINE Notify 액세스 토큰 (설정 파일 또는 "+config.EnvPrefix+"TOKEN 대체)")
	f.StringVar(&flags.imageThumbnail, "image-thumbnail", "", "미리보기 이미지 URL")
	f.StringVar(&flags.imageFullsize, "image-fullsize", "", "원본 이미지 URL")
	f.StringVar(&flags.imageFile, "image-file", "", "업로드할 로컬 이미지 파일 경로")
	f.IntVar(&flags.stickerPackageID, "sticker-package-id", 0, "스티커 패키지 ID")
	f.IntVar(&flags.stickerID, "sticker-id", 0, "스티커 ID")

	return cmd
}

// buildRequest 설정 파일의 기본값 위에 명령행 인자를 덮어써 알림 요청을 구성합니다.
func buildRequest(cmd *cobra.Command, cfg *config.AppConfig, flags sendFlags) *notify.Request {
	n := cfg.Notification

	token := cfg.Token
	if cmd.Flags().Changed("token") {
		token = flags.token
	}

	req := notify.New(token, notify.WithEndpoint(cfg.Endpoint)).
		SetMessage(flags.message).
		SetImageThumbnail(stringFlag(cmd, "image-thumbnail", flags.imageThumbnail, n.ImageThumbnail)).
		SetImageFullsize(stringFlag(cmd, "image-fullsize", flags.imageFullsize, n.ImageFullsize)).
		SetImageFile(stringFlag(cmd, "image-file", flags.imageFile, n.ImageFile)).
		SetSticker(
			intFlag(cmd, "sticker-package-id", flags.stickerPackageID, n.StickerPackageID),
			intFlag(cmd, "sticker-id", flags.stickerID, n.StickerID),
		)

	applog.WithComponentAndFields("cli", applog.Fields{
		"endpoint":  cfg.Endpoint,
		"multipart": req.IsMultipart(),
	}).Debug("알림 요청 구성 완료")

	return req
}

func stringFlag(cmd *cobra.Command, name, value, fallback string) string {
	if cmd.Flags().Changed(name) {
		return value
	}
	return fallback
}

// intFlag 명령행 인자 또는 설정값을 반환합니다. 둘 다 없으면 nil을 반환합니다.
func intFlag(cmd *cobra.Command, name string, value, fallback int) *int {
	if cmd.Flags().Changed(name) {
		return notify.Int(value)
	}
	if fallback != 0 {
		return notify.Int(fallback)
	}
	return nil
}

func printResult(w io.Writer, result *notify.Result) {
	if result.Response != nil {
		fmt.Fprintf(w, "status: %d\n", result.Response.Status)
		fmt.Fprintf(w, "message: %s\n", result.Response.Message)
	} else {
		fmt.Fprintf(w, "status code: %d (응답 본문을 해석할 수 없습니다)\n", result.StatusCode)
	}

	if rl := result.RateLimit; rl.Known {
		fmt.Fprintf(w, "rate limit: %d/%d", rl.Remaining, rl.Limit)
		if rl.ImageLimit > 0 {
			fmt.Fprintf(w, ", image: %d/%d", rl.ImageRemaining, rl.ImageLimit)
		}
		if !rl.Reset.IsZero() {
			fmt.Fprintf(w, ", reset: %s", rl.Reset.Format("2006-01-02 15:04:05"))
		}
		fmt.Fprintln(w)
	}
}

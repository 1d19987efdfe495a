package notify

import (
	apperrors "github.com/darkkaiser/line-notifier/internal/pkg/errors"
)

var (
	// ErrTokenRequired 액세스 토큰 없이 전송을 시도했을 때 반환됩니다.
	ErrTokenRequired = apperrors.New(apperrors.InvalidInput, "액세스 토큰(token)은 필수입니다")

	// ErrMessageRequired 메시지 없이 전송을 시도했을 때 반환됩니다.
	ErrMessageRequired = apperrors.New(apperrors.InvalidInput, "메시지(message)는 필수입니다")
)

// IsConfigurationError 전송 전 검증 단계에서 발생한 설정 오류인지 확인합니다.
//
// 설정 오류는 네트워크 요청 이전에 발생하며 재시도로 해결되지 않습니다.
// 호출자가 누락된 값을 설정한 뒤 다시 Send를 호출해야 합니다.
func IsConfigurationError(err error) bool {
	return err != nil && apperrors.Is(err, apperrors.InvalidInput)
}

// newErrImageFileOpen 업로드할 이미지 파일을 열 수 없을 때 반환되는 에러를 생성합니다.
func newErrImageFileOpen(err error, path string) error {
	return apperrors.Wrapf(err, apperrors.System, "업로드할 이미지 파일을 열 수 없습니다: '%s'", path)
}

package config

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"

	apperrors "github.com/darkkaiser/line-notifier/internal/pkg/errors"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator 새로운 Validator 인스턴스를 생성하고 커스텀 유효성 검사 함수를 등록합니다.
func newValidator() *validator.Validate {
	v := validator.New()

	// 검증 에러 메시지에 Go 구조체 필드명 대신 JSON 이름을 사용한다.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("line_token", validateLineToken); err != nil {
		panic(fmt.Sprintf("초기화 치명적 오류: 'line_token' 커스텀 유효성 검사 함수 등록에 실패했습니다: %v", err))
	}

	return v
}

// validateLineToken 액세스 토큰에 공백 문자가 포함되어 있지 않은지 검증합니다.
//
// 토큰은 Authorization 헤더에 그대로 실리므로 공백이나 개행이 섞이면 안 된다.
// 빈 값은 허용한다. (명령행 인자로 전달될 수 있음)
func validateLineToken(fl validator.FieldLevel) bool {
	return !strings.ContainsFunc(fl.Field().String(), unicode.IsSpace)
}

// checkStruct 구조체의 유효성을 검사하고, 사용자 친화적인 에러 메시지를 반환합니다.
func checkStruct(v *validator.Validate, s any, contextName string) error {
	if err := v.Struct(s); err != nil {
		var validationErrors validator.ValidationErrors
		if apperrors.As(err, &validationErrors) {
			// 첫 번째 에러만 상세히 보고
			firstErr := validationErrors[0]

			switch firstErr.Tag() {
			case "line_token":
				return apperrors.New(apperrors.InvalidInput, "액세스 토큰(token)에 공백 문자가 포함되어 있습니다")
			case "http_url":
				return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s의 URL 형식이 올바르지 않습니다: '%v' (http 또는 https URL이어야 합니다)", firstErr.Namespace(), firstErr.Value()))
			}

			return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s의 설정이 올바르지 않습니다: %s (조건: %s)", contextName, firstErr.Namespace(), firstErr.Tag()))
		}
		return apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("%s 유효성 검증에 실패했습니다", contextName))
	}
	return nil
}

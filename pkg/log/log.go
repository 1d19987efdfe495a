// Package log logrus 기반의 애플리케이션 로깅 설정과 헬퍼를 제공합니다.
package log

import (
	"github.com/sirupsen/logrus"
)

// SetDebugMode Debug 모드에 따라 로그 레벨을 재설정합니다.
//   - Debug 모드: Trace 레벨 (모든 로그 출력)
//   - 일반 모드: Warn 레벨
func SetDebugMode(debug bool) {
	if debug {
		logrus.SetLevel(TraceLevel)
	} else {
		logrus.SetLevel(WarnLevel)
	}
}

// MaskSensitiveData 토큰 등 민감한 정보를 로그에 남길 수 있도록 마스킹합니다.
// 길이는 문자(rune) 단위로 계산하며, 짧은 값은 최소 절반 이상을 가립니다.
func MaskSensitiveData(data string) string {
	if data == "" {
		return ""
	}

	runes := []rune(data)
	n := len(runes)

	// 3자 이하는 전체 마스킹
	if n <= 3 {
		return "***"
	}

	// 16자 미만은 앞부분만 표시 (최대 4자, 전체의 절반 이하)
	if n < 16 {
		return string(runes[:min(4, n/2)]) + "***"
	}

	// 긴 토큰은 앞 4자 + 뒤 4자
	return string(runes[:4]) + "***" + string(runes[n-4:])
}

// WithComponent component 필드를 포함한 로그 Entry를 반환합니다.
func WithComponent(component string) *Entry {
	return logrus.WithField("component", component)
}

// WithComponentAndFields component 필드와 추가 필드를 포함한 로그 Entry를 반환합니다.
func WithComponentAndFields(component string, fields Fields) *Entry {
	newFields := make(Fields, len(fields)+1)
	for k, v := range fields {
		newFields[k] = v
	}
	newFields["component"] = component
	return logrus.WithFields(newFields)
}

package log

import (
	"github.com/sirupsen/logrus"
)

// Level logrus.Level의 별칭입니다.
type Level = logrus.Level

const (
	// ErrorLevel 전송 실패 등 사용자의 확인이 필요한 오류
	ErrorLevel Level = logrus.ErrorLevel

	// WarnLevel 원격 API가 요청을 거절했거나, 설정값 일부가 무시되는 등 주의가 필요한 상태
	WarnLevel Level = logrus.WarnLevel

	// InfoLevel 알림 전송 결과 등 정상 흐름
	InfoLevel Level = logrus.InfoLevel

	// DebugLevel 요청 인코딩 방식, 전송 필드 목록 등 문제 해결을 위한 상세 정보
	DebugLevel Level = logrus.DebugLevel

	// TraceLevel 응답 본문 원문 등 가장 세밀한 정보
	TraceLevel Level = logrus.TraceLevel
)

// AllLevels logrus.AllLevels의 별칭입니다.
var AllLevels = logrus.AllLevels

// Fields logrus.Fields의 별칭입니다.
type Fields = logrus.Fields

// Entry logrus.Entry의 별칭입니다.
type Entry = logrus.Entry

// Formatter logrus.Formatter의 별칭입니다.
type Formatter = logrus.Formatter

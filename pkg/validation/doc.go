// Package validation 설정값 등 외부 입력의 유효성을 검사하는 함수를 제공합니다.
//
// 모든 검증 함수는 유효하지 않은 입력에 대해 원인을 설명하는 error를 반환합니다.
package validation

package pkg

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// WrappedError представляет собой структуру для обертывания ошибки и записи ее в логи.
// Реализует интерфейс error.
// Дополнительно реализует функционал вывода сообщений (не ошибок) в логи.
type WrappedError struct {
	functionName string // Имя функции (где произошла ошибка?)
	comment      string // Комментарий к ошибке (что именно вызвало ошибку?)
	err          error  // Ошибка, которая будет обернута
}

// NewWrappedError создает новый экземпляр WrappedError с именем функции, но без комментария.
// То есть уже известно, где ошибка может произойти, но что именно за ошибка еще неизвестно.
func NewWrappedError(funcName string) *WrappedError {
	return &WrappedError{functionName: funcName}
}

// Specify обновляет экземпляр, если переданная ошибка не nil. Перезаписываются err и comment.
// То есть уже известно, что это за ошибка. Функция, в которой появляется ошибка, указывается при создании.
func (e *WrappedError) Specify(err error, comment string) *WrappedError {
	if err != nil {
		e.err = err
		e.comment = comment
	}
	return e
}

// Error возвращает строковое представление ошибки с комментарием и именем функции.
// Имплементируется метод интерфейса error.
func (e *WrappedError) Error() string {
	if e.err == nil {
		return ""
	}
	return fmt.Sprintf("'%s' in function '%s' invoked '%s'", e.comment, e.functionName, e.err.Error())
}

// Unwrap возвращает обернутую ошибку для errors.Is и errors.As
func (e *WrappedError) Unwrap() error {
	return e.err
}

// LogError записывает ошибку в логи через zerolog.
// Если ошибки нет, то ничего не делает.
func (e *WrappedError) LogError() {
	if e.err != nil {
		log.Error().Str("func", e.functionName).Str("comment", e.comment).Err(e.err).Msg("request failed")
	}
}

// LogMsg записывает сообщение в логи через zerolog.
// Это сообщение не является ошибкой.
func (e *WrappedError) LogMsg(msg string) {
	log.Info().Str("func", e.functionName).Msg(msg)
}

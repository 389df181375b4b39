package service

import (
	"crypto/rand"
	"fmt"
)

// Алфавит и длина номера заявки: 8 символов base-36 в верхнем регистре.
// Пространство ~2.8e12 значений; глобальная уникальность вероятностная,
// без проверки по существующим записям
const (
	entryNumberCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	entryNumberLength  = 8
)

// newEntryNumber генерирует короткий читаемый номер заявки
func newEntryNumber() (string, error) {
	buf := make([]byte, entryNumberLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("ошибка чтения случайных байт: %w", err)
	}

	for i, b := range buf {
		buf[i] = entryNumberCharset[int(b)%len(entryNumberCharset)]
	}
	return string(buf), nil
}

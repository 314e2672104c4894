// Package crypto реализует хеширование пароля для offline-проверки
// учетных данных.
package crypto

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strconv"
	"unicode/utf16"
)

// minFallbackDigestLen минимальная длина fallback-дайджеста (hex)
const minFallbackDigestLen = 16

// Hasher вычисляет детерминированный дайджест пароля.
//
// Основной алгоритм — SHA-256 (hex, нижний регистр). Резервный — быстрый
// некриптографический rolling-хеш, оставшийся от окружений без криптопримитива
// (insecure context). Записи, созданные старыми сборками, могли использовать
// любой из двух, поэтому Verify принимает дайджест обоих алгоритмов.
type Hasher struct {
	// fallbackOnly переводит Digest на резервный алгоритм.
	// Используется когда SHA-256 недоступен и в тестах совместимости.
	fallbackOnly bool
}

// NewHasher создает Hasher с основным алгоритмом SHA-256
func NewHasher() *Hasher {
	return &Hasher{}
}

// NewFallbackHasher создает Hasher, использующий только резервный алгоритм
func NewFallbackHasher() *Hasher {
	return &Hasher{fallbackOnly: true}
}

// Digest возвращает дайджест пароля текущим алгоритмом
func (h *Hasher) Digest(password string) string {
	if h.fallbackOnly {
		return fallbackDigest(password)
	}
	return sha256Digest(password)
}

// Verify проверяет пароль против сохраненного дайджеста.
// Дайджест мог быть получен любым из двух алгоритмов — проверяем оба.
func (h *Hasher) Verify(password, storedDigest string) bool {
	if storedDigest == "" {
		return false
	}

	if digestEqual(sha256Digest(password), storedDigest) {
		return true
	}

	return digestEqual(fallbackDigest(password), storedDigest)
}

// sha256Digest возвращает SHA-256 от UTF-8 представления пароля (hex)
func sha256Digest(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// fallbackDigest реализует двухполосный мультипликативный rolling-хеш:
// два 32-битных аккумулятора с разными начальными константами, шаг
// acc = (acc*33) xor code по UTF-16 code units (совместимость со старым
// форматом). Результат — конкатенация hex обоих аккумуляторов, дополненная
// нулями слева до минимальной длины. НЕ является криптографически стойким.
func fallbackDigest(password string) string {
	h1 := uint32(5381)
	h2 := uint32(52711)

	for _, code := range utf16.Encode([]rune(password)) {
		h1 = h1*33 ^ uint32(code)
		h2 = h2*33 ^ uint32(code)
	}

	combined := strconv.FormatUint(uint64(h1), 16) + strconv.FormatUint(uint64(h2), 16)
	for len(combined) < minFallbackDigestLen {
		combined = "0" + combined
	}

	return combined
}

// digestEqual сравнивает дайджесты за постоянное время
func digestEqual(a, b string) bool {
	return len(a) == len(b) && subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

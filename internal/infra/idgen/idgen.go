package idgen

import (
	"strings"

	"github.com/google/uuid"
)

// 公開IDの桁数
const PublicIDLength = 8

// UUIDv4のhex先頭8桁を公開IDにする
type ShortUUIDGenerator struct{}

func New() *ShortUUIDGenerator {
	return &ShortUUIDGenerator{}
}

func (g *ShortUUIDGenerator) NewID() string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return hex[:PublicIDLength]
}

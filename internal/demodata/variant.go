package demodata

import (
	"strings"

	pkgerrors "github.com/NesterenkoAlexander/project-tt4u/pkg/errors"
)

// Variant 演示数据规模，按 NONE < SMALL < LARGE 有序
type Variant int

const (
	VariantNone Variant = iota
	VariantSmall
	VariantLarge
)

var variantNames = [...]string{
	VariantNone:  "NONE",
	VariantSmall: "SMALL",
	VariantLarge: "LARGE",
}

// String 返回配置中使用的名称
func (v Variant) String() string {
	if v < VariantNone || v > VariantLarge {
		return "UNKNOWN"
	}
	return variantNames[v]
}

// ParseVariant 解析配置值（忽略大小写与首尾空白）
func ParseVariant(s string) (Variant, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for v, n := range variantNames {
		if n == name {
			return Variant(v), nil
		}
	}
	return VariantNone, pkgerrors.ErrUnknownVariant
}

package a

import "example.com/variant"

type Kind uint8

func complete(v variant.Variant) string {
	switch v.Kind() {
	case variant.KindVoid:
		return "void"
	case variant.KindBoolean, variant.KindReal:
		return "bool or real"
	case variant.KindInteger:
		return "int"
	case variant.KindString:
		return "string"
	}
	return ""
}

func withDefault(v variant.Variant) bool {
	switch v.Kind() {
	case variant.KindReal:
		return true
	default:
		return false
	}
}

func incomplete(v variant.Variant) bool {
	switch k := v.Kind(); k { // want `missing cases in switch of type variant.Kind: KindBoolean, KindString, KindVoid`
	case variant.KindReal, variant.KindInteger:
		return true
	}
	return false
}

func empty(k variant.Kind) {
	switch k { // want `missing cases in switch of type variant.Kind: KindBoolean, KindInteger, KindReal, KindString, KindVoid`
	}
}

func literal(k variant.Kind) bool {
	switch k { // want `missing cases in switch of type variant.Kind: KindString`
	case 0, 1, 2, 3:
		return true
	}
	return false
}

func otherKind(k Kind) bool {
	switch k {
	case 0:
		return true
	}
	return false
}

func tagless(v variant.Variant) bool {
	switch {
	case v.Kind() == variant.KindVoid:
		return true
	}
	return false
}

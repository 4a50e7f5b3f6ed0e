package catalog

import (
	"fmt"
	"strings"

	"github.com/SergeyBogomolovv/shop-admin/internal/entities"
)

// ShortDescription is the Hebrew label used on packing lists and supplier orders.
func ShortDescription(p entities.Product) string {
	var s string
	switch p.Kind {
	case entities.KindTights:
		s = fmt.Sprintf("טייץ גרביון, %s דניר, %s רגל, מידה %s, צבע %s",
			p.Attr("denier"), p.Attr("leg"), p.Attr("size"), p.Attr("color"))
	case entities.KindLace:
		s = fmt.Sprintf("טייץ תחרה, תחרה %s ,צבע %s", p.Attr("lace"), p.Attr("color"))
	case entities.KindShort:
		s = fmt.Sprintf("טייץ קצר, אורך %s ,צבע %s", p.Attr("length"), p.Attr("color"))
	case entities.KindThermal:
		s = fmt.Sprintf("טייץ תרמי, %s רגל, מידה %s , צבע %s",
			p.Attr("leg"), p.Attr("size"), p.Attr("color"))
	default:
		s = p.Name
		if s == "" {
			s = p.ID
		}
	}
	return strings.TrimSpace(s)
}

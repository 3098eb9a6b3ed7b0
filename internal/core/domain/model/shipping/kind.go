package shipping

import (
	"fmt"
	"strings"

	"shippingcost/internal/pkg/errs"
)

// Kind identifies a pricing strategy variant. It is the persisted and
// transported form of a strategy; together with a threshold it is enough
// to rebuild any strategy through New.
type Kind int

const (
	// KindUnknown (0) catches uninitialized Kind values.
	KindUnknown Kind = iota
	KindFast
	KindEconomy
	KindPickup
	KindPromotional
)

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		KindUnknown:     "unknown",
		KindFast:        "fast",
		KindEconomy:     "economy",
		KindPickup:      "pickup",
		KindPromotional: "promotional",
	}
}

// Kinds returns every valid kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindFast, KindEconomy, KindPickup, KindPromotional}
}

// ParseKind converts the textual form ("fast", "economy", "pickup",
// "promotional") into a Kind. Matching ignores case and surrounding spaces.
func ParseKind(s string) (Kind, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	for _, k := range Kinds() {
		if k.String() == normalized {
			return k, nil
		}
	}
	return KindUnknown, errs.NewValueIsInvalidErrorWithCause(
		"strategy kind is invalid", fmt.Errorf("%q is not a known strategy kind", s))
}

// Validate returns an error for KindUnknown and out-of-range values.
func (k Kind) Validate() error {
	if k <= KindUnknown || k > KindPromotional {
		return errs.NewValueIsInvalidErrorWithCause(
			"strategy kind is invalid", fmt.Errorf("%d is not a valid strategy kind", k))
	}
	return nil
}

// String implements fmt.Stringer. Invalid values render as "unknown".
func (k Kind) String() string {
	if str, ok := getKindStrings()[k]; ok {
		return str
	}
	return "unknown"
}

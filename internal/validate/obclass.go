package validate

import "github.com/mgylling/badgecheck/internal/primitive"

func primitiveOBClass(s string) primitive.OBClass {
	return primitive.OBClass(s)
}

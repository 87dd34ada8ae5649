package comparator

import (
	"strings"

	cv "github.com/gofhir/contentvalidator"
	"github.com/gofhir/contentvalidator/model"
	"github.com/gofhir/contentvalidator/pkg/message"
)

var birthSexCategory = string(model.CategoryBirthSex)

// ValidateBirthSex checks the submitted document only. A missing social
// history section or birth sex observation reports BIRTH_SEX_MISSING; an
// observation whose code is absent or not M/F reports BIRTH_SEX_INVALID.
func ValidateBirthSex(submitted *model.Document, res *cv.Result) {
	social, ok := submitted.SocialHistory.Get()
	if !ok {
		res.Add(message.Finding(message.BirthSexMissing, birthSexCategory, nil))
		return
	}
	birthSex, ok := social.BirthSex.Get()
	if !ok {
		res.Add(message.Finding(message.BirthSexMissing, birthSexCategory, nil))
		return
	}

	if code, ok := birthSex.SexCode.Get(); ok && isBirthSexCode(code.Code) {
		return
	}
	res.Add(message.Finding(message.BirthSexInvalid, birthSexCategory, nil))
}

func isBirthSexCode(code string) bool {
	return strings.EqualFold(code, "M") || strings.EqualFold(code, "F")
}

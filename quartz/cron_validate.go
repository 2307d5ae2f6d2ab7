package quartz

// validateFields enforces the rules which span more than a single term:
// exactly one of the day fields must be '?', and the L, W and # tokens
// must not be combined with other list elements.
func validateFields(specs *[fieldCount]FieldSpec) error {
	dayOfMonth := specs[DayOfMonth]
	dayOfWeek := specs[DayOfWeek]

	switch {
	case dayOfMonth.kind == NoSpecificValue && dayOfWeek.kind == NoSpecificValue:
		return conflictingFieldsError(NoField, "",
			"'?' may be used in only one of the day-of-month and day-of-week fields")
	case dayOfMonth.kind != NoSpecificValue && dayOfWeek.kind != NoSpecificValue:
		return conflictingFieldsError(NoField, dayOfMonth.Raw()+" "+dayOfWeek.Raw(),
			"specifying both a day-of-month and a day-of-week is not supported, use '?' in one of them")
	}

	for _, field := range []CronField{DayOfMonth, DayOfWeek} {
		spec := specs[field]
		term, ok := spec.specialTerm()
		if ok && len(spec.terms) > 1 {
			return conflictingFieldsError(field, spec.raw,
				"%q cannot be combined with other values", term.raw)
		}
	}
	return nil
}

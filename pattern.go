package validino

// Regex passes strings that the pattern matches at their start, as a
// prefix match. Anchor with $ to require a full match. A pattern that does
// not compile makes every call return a *ConfigError.
func Regex(pattern string, msg Msg) Validator {
	re, compileErr := compilePattern(pattern)
	return Func(func(value any, _ Context) (any, error) {
		if compileErr != nil {
			return nil, compileErr
		}
		s, ok := value.(string)
		if !ok {
			return nil, fail(msg, "regex", "does not match pattern")
		}
		// The leftmost match starts at 0 whenever any match does.
		loc := re.FindStringIndex(s)
		if loc == nil || loc[0] != 0 {
			return nil, fail(msg, "regex", "does not match pattern")
		}
		return value, nil
	})
}

// RegexSub replaces every match of pattern in string values with repl,
// which may reference groups as $1 or ${name}. Non-strings pass through.
func RegexSub(pattern, repl string) Validator {
	re, compileErr := compilePattern(pattern)
	return Func(func(value any, _ Context) (any, error) {
		if compileErr != nil {
			return nil, compileErr
		}
		s, ok := value.(string)
		if !ok {
			return value, nil
		}
		return re.ReplaceAllString(s, repl), nil
	})
}

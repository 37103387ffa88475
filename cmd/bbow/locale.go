package main

import (
	"fmt"

	jj "github.com/cloudfoundry/jibber_jabber"
	"github.com/npillmayer/schuko/gtrace"
	"golang.org/x/text/language"
)

// languageFor resolves the --lang flag. "auto" detects the user's locale
// from the environment, falling back to language-neutral lowercasing.
func languageFor(lang string) (language.Tag, error) {
	if lang != "auto" {
		tag, err := language.Parse(lang)
		if err != nil {
			return language.Und, fmt.Errorf("invalid language %q: %w", lang, err)
		}
		return tag, nil
	}
	userLocale, err := jj.DetectIETF()
	if err != nil {
		gtrace.CoreTracer.Infof("cannot detect user locale: %v", err)
		return language.Und, nil
	}
	gtrace.CoreTracer.Infof("detected user locale %v", userLocale)
	return language.Make(userLocale), nil
}

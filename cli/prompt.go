package cli

import (
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/pkg/errors"
	"github.com/qjpcpu/go-prompt"
)

type SelectWidget = promptui.Select

type SelectFn func(*SelectWidget)

// Select from menu, return -1 when aborted
func Select(label string, choices []string, opt ...SelectFn) (int, string) {
	widget := promptui.Select{
		Label: label,
		Items: choices,
	}
	for _, fn := range opt {
		fn(&widget)
	}
	idx, result, err := widget.Run()
	if err != nil {
		return -1, ""
	}
	return idx, result
}

// Confirm with y/n
func Confirm(label string, defaultY bool) bool {
	widget := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}
	if defaultY {
		widget.Default = "y"
	} else {
		widget.Default = "n"
	}

	result, _ := widget.Run()

	result = strings.ToLower(result)
	if defaultY {
		return result != "n"
	}
	return result == "y"
}

// InputValue ask for a single value until it passes validate
func InputValue(label string, validate func(string) error) (string, error) {
	if validate == nil {
		validate = NotBlank
	}
	widget := promptui.Prompt{
		Label:    label,
		Validate: validate,
	}
	result, err := widget.Run()
	if err != nil {
		return "", errors.Wrapf(err, "input %s", label)
	}
	return strings.TrimSpace(result), nil
}

// NotBlank rejects empty or whitespace only input
func NotBlank(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("value should not be blank")
	}
	return nil
}

type Suggest struct {
	Text string
	Desc string
}

func (s Suggest) convert() prompt.Suggest { return prompt.Suggest{Text: s.Text, Description: s.Desc} }

// Input read a line with the suggestions completing its first word.
func Input(label string, suggestions []Suggest) (text string, interrupted bool) {
	menu := func(d prompt.Document) []prompt.Suggest {
		before := d.TextBeforeCursor()
		if strings.Contains(before, " ") {
			return nil
		}
		return suggest(suggestions, before)
	}
	text, interrupted = prompt.Input(
		label+" ",
		menu,
		prompt.OptionPrefixTextColor(prompt.Blue),
	)
	return strings.TrimSpace(text), interrupted
}

func suggest(suggestions []Suggest, word string) []prompt.Suggest {
	list := make([]prompt.Suggest, 0, len(suggestions))
	for _, sg := range suggestions {
		if strings.TrimSpace(sg.Text) == "" {
			continue
		}
		list = append(list, sg.convert())
	}
	return prompt.FilterHasPrefix(list, word, true)
}

package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/tidwall/pretty"
)

func printJSON(out io.Writer, v interface{}) error {
	body, err := json.Marshal(v)
	if err != nil {
		return errors.Wrap(err, "failed to marshal output as JSON")
	}

	formatted := pretty.PrettyOptions(body, &pretty.Options{Indent: "    ", Width: 80})
	if isTerminal(out) {
		formatted = pretty.Color(formatted, nil)
	}

	_, err = fmt.Fprint(out, string(formatted))
	return err
}

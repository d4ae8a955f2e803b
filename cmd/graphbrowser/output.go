package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type Output[T any] interface {
	Emit(T)
	EmitAll([]T)
	ErrorResponse(*resty.Response) error
	Done()
}

type output[T any] struct {
	w           io.Writer
	hasPrevious bool
}

func (o *output[T]) EmitAll(vs []T) {
	for _, v := range vs {
		o.Emit(v)
	}
}

func (o *output[T]) Emit(v T) {
	indent := "  "
	if !o.hasPrevious {
		fmt.Fprint(o.w, "[\n")
	} else {
		fmt.Fprint(o.w, ",\n")
	}

	formatted, _ := json.MarshalIndent(v, indent, "  ")
	fmt.Fprint(o.w, indent+string(formatted))
	o.hasPrevious = true
}

func (o *output[T]) ErrorResponse(resp *resty.Response) error {
	restErr := resp.Error()
	if restErr == nil {
		restErr = string(resp.Body())
	}

	errorJson := struct {
		Status   int         `json:"status"`
		Response interface{} `json:"response"`
	}{
		Status:   resp.StatusCode(),
		Response: restErr,
	}

	prettyJSON, _ := json.MarshalIndent(errorJson, "", "  ")
	fmt.Fprintln(o.w, string(prettyJSON))

	return errors.New("error from API")
}

func (o *output[T]) Done() {
	if o.hasPrevious {
		fmt.Fprint(o.w, "\n]\n")
	} else {
		fmt.Fprintln(o.w, "[]")
	}
}

// OutputMultiple writes a JSON array to the command's stdout.
func OutputMultiple[T any](cmd *cobra.Command) Output[T] {
	return &output[T]{w: cmd.OutOrStdout()}
}

package backtrace

import (
	"fmt"
	"hash/adler32"
	"reflect"
	"strings"
)

const nilErrTitle = "<nil>"

// ErrorBody builds the trace_chain fragment of an error report for err. The
// unwrap chain is followed until nil and every link is parsed on its own, so
// each one gets the grammar that fits it. The first *LineNumberError aborts
// the whole body.
func (p *Parser) ErrorBody(err error) (map[string]interface{}, error) {
	traceChain := []map[string]interface{}{}
	for i := 0; i < maxUnwrapDepth; i++ {
		frames, perr := p.Parse(err)
		if perr != nil {
			return nil, perr
		}
		traceChain = append(traceChain, buildTrace(err, frames))

		if err == nil {
			break
		}
		err = p.configuration.unwrapper(err)
		if err == nil {
			break
		}
	}
	return map[string]interface{}{"trace_chain": traceChain}, nil
}

// builds one trace element in trace_chain
func buildTrace(err error, frames []StackFrame) map[string]interface{} {
	message := nilErrTitle
	if err != nil {
		message = err.Error()
	}
	return map[string]interface{}{
		"frames": framesBody(frames),
		"exception": map[string]interface{}{
			"class":   errorClass(err),
			"message": message,
		},
	}
}

// framesBody converts frames to the field names used by the reporting API.
func framesBody(frames []StackFrame) []map[string]interface{} {
	body := make([]map[string]interface{}, 0, len(frames))
	for _, f := range frames {
		frame := map[string]interface{}{
			"filename": f.File,
			"method":   f.Function,
		}
		if line, ok := f.LineNumber(); ok {
			frame["lineno"] = line
		}
		body = append(body, frame)
	}
	return body
}

func errorClass(err error) string {
	if err == nil {
		return nilErrTitle
	}

	type classer interface {
		Class() string
	}
	if c, ok := err.(classer); ok && c.Class() != "" {
		return c.Class()
	}

	class := reflect.TypeOf(err).String()
	if class == "" {
		return "panic"
	} else if class == "*errors.errorString" {
		checksum := adler32.Checksum([]byte(err.Error()))
		return fmt.Sprintf("{%x}", checksum)
	} else {
		return strings.TrimPrefix(class, "*")
	}
}

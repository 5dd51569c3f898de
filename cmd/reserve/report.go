package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/m04kA/SMC-ReservationClient/internal/domain"
)

var errNotSucceeded = errors.New("request did not succeed")

// report печатает итоговое состояние потока; ошибка означает ненулевой код выхода.
// Ошибка workflow без состояния (например, ErrClosed) передается вызывающему.
func report(w io.Writer, flow string, state domain.FlowState, err error) error {
	if state.Phase == "" {
		if err == nil {
			err = errNotSucceeded
		}
		return fmt.Errorf("%s: %w", flow, err)
	}

	fmt.Fprintf(w, "%s: %s\n", flow, state.Phase)
	if state.Message != "" {
		fmt.Fprintf(w, "  %s\n", state.Message)
	}
	if len(state.Violations) > 0 {
		fields := make([]string, 0, len(state.Violations))
		for _, v := range state.Violations {
			fields = append(fields, string(v))
		}
		fmt.Fprintf(w, "  invalid: %s\n", strings.Join(fields, ", "))
	}

	if state.Phase != domain.PhaseSucceeded {
		return errNotSucceeded
	}
	return nil
}

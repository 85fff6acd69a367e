package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"asset-reconciler/core/reconcile"
	"asset-reconciler/core/utils"
)

// promptConfirmer asks on out and reads the answer from in. Anything but an
// affirmative answer refuses.
func promptConfirmer(in io.Reader, out io.Writer) reconcile.Confirmer {
	reader := bufio.NewReader(in)
	return reconcile.ConfirmFunc(func(_ context.Context, s reconcile.Summary) (bool, error) {
		fmt.Fprintf(out, "\n%s [yes/no]: ", s.String())
		response, err := reader.ReadString('\n')
		if err != nil && response == "" {
			return false, fmt.Errorf("failed to read confirmation: %w", err)
		}
		return utils.ToBool(response), nil
	})
}

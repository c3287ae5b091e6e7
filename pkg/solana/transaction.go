package solana

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// CheckTransactionStatus reports the confirmation state of a signature:
// "pending", "confirmed", "finalized" or "error".
func CheckTransactionStatus(client *rpc.Client, signature string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	sig, err := solana.SignatureFromBase58(signature)
	if err != nil {
		return "", fmt.Errorf("invalid signature format: %v", err)
	}

	res, err := client.GetSignatureStatuses(ctx, true, sig)
	if err != nil {
		return "", fmt.Errorf("failed to get signature status: %v", err)
	}

	if len(res.Value) == 0 || res.Value[0] == nil {
		return "pending", nil
	}

	status := res.Value[0]

	if status.Err != nil {
		errJSON, _ := json.Marshal(status.Err)
		return "error", fmt.Errorf("transaction failed: %s", string(errJSON))
	}

	switch status.ConfirmationStatus {
	case rpc.ConfirmationStatusFinalized:
		return "finalized", nil
	case rpc.ConfirmationStatusConfirmed:
		return "confirmed", nil
	case rpc.ConfirmationStatusProcessed:
		return "pending", nil
	}

	return "pending", nil
}

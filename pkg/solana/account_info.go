package solana

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	log "github.com/sirupsen/logrus"
)

// TokenMetadata is the on-chain metadata account decoded for a mint.
type TokenMetadata struct {
	Key                  uint8
	UpdateAuthority      solana.PublicKey
	Mint                 solana.PublicKey
	Name                 string
	Symbol               string
	Uri                  string
	SellerFeeBasisPoints uint16
	Creator              string
}

// GetSolBalance returns the lamport balance of an account
func GetSolBalance(client *rpc.Client, owner solana.PublicKey) (uint64, time.Time, error) {
	resp, err := client.GetBalance(context.Background(), owner, rpc.CommitmentFinalized)
	if err != nil {
		log.Errorf("> Failed to get SOL balance for %s: %v", owner.String(), err)
		return 0, time.Time{}, err
	}
	return resp.Value, time.Now(), nil
}

func readString(buf *bytes.Buffer) (string, error) {
	var strLen uint32
	if err := binary.Read(buf, binary.LittleEndian, &strLen); err != nil {
		return "", err
	}
	strBytes := make([]byte, strLen)
	if _, err := buf.Read(strBytes); err != nil {
		return "", err
	}
	return string(strBytes), nil
}

// GetTokenMetadata fetches and decodes the metadata account registered for a
// mint. Strings come back padded to their on-chain field width.
func GetTokenMetadata(client *rpc.Client, mint solana.PublicKey) (*TokenMetadata, error) {
	metadataAddress, _, err := GetMetadataPDA(mint)
	if err != nil {
		return nil, fmt.Errorf("failed to derive metadata address: %w", err)
	}

	accountInfo, err := client.GetAccountInfo(context.Background(), metadataAddress)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch metadata: %w", err)
	}
	if accountInfo == nil || accountInfo.Value == nil || accountInfo.Value.Data == nil {
		return nil, fmt.Errorf("no metadata found for mint: %s", mint.String())
	}

	data := accountInfo.Value.Data.GetBinary()
	buf := bytes.NewBuffer(data)

	var meta TokenMetadata
	if err := binary.Read(buf, binary.LittleEndian, &meta.Key); err != nil {
		return nil, err
	}
	if _, err := buf.Read(meta.UpdateAuthority[:]); err != nil {
		return nil, err
	}
	if _, err := buf.Read(meta.Mint[:]); err != nil {
		return nil, err
	}

	if meta.Name, err = readString(buf); err != nil {
		return nil, err
	}
	if meta.Symbol, err = readString(buf); err != nil {
		return nil, err
	}
	if meta.Uri, err = readString(buf); err != nil {
		return nil, err
	}

	if err := binary.Read(buf, binary.LittleEndian, &meta.SellerFeeBasisPoints); err != nil {
		return nil, err
	}

	// Creators vector is optional; fall back to the update authority
	var hasCreators uint8
	if err := binary.Read(buf, binary.LittleEndian, &hasCreators); err != nil {
		meta.Creator = meta.UpdateAuthority.String()
		return &meta, nil
	}

	if hasCreators == 1 {
		var numCreators uint32
		if err := binary.Read(buf, binary.LittleEndian, &numCreators); err != nil || numCreators == 0 {
			meta.Creator = meta.UpdateAuthority.String()
			return &meta, nil
		}

		var creatorPubkey [32]byte
		if _, err := buf.Read(creatorPubkey[:]); err != nil {
			meta.Creator = meta.UpdateAuthority.String()
			return &meta, nil
		}
		meta.Creator = solana.PublicKeyFromBytes(creatorPubkey[:]).String()
	} else {
		meta.Creator = meta.UpdateAuthority.String()
	}

	return &meta, nil
}

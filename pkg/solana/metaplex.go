package solana

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// Metaplex Token Metadata program
var TokenMetadataProgramID = solana.MustPublicKeyFromBase58("metaqbxxUerdq28cj1RbAWkYQm3ybzjb6a8bt518x1s")

// Instruction discriminators (borsh enum index)
const (
	instructionCreateMasterEditionV3   = 17
	instructionCreateMetadataAccountV3 = 33
)

// PDA seeds
var (
	SeedMetadata = []byte("metadata")
	SeedEdition  = []byte("edition")
)

// Royalty and creator-share constants for every minted strategy NFT.
const (
	SellerFeeBasisPoints = 500 // 5% resale royalty
	CreatorFullShare     = 100
)

// MetadataCreator is one entry of the metadata creators vector.
type MetadataCreator struct {
	Address  solana.PublicKey
	Verified bool
	Share    uint8
}

// GetMetadataPDA returns the metadata account address for a mint.
func GetMetadataPDA(mint solana.PublicKey) (solana.PublicKey, uint8, error) {
	return solana.FindProgramAddress(
		[][]byte{
			SeedMetadata,
			TokenMetadataProgramID.Bytes(),
			mint.Bytes(),
		},
		TokenMetadataProgramID,
	)
}

// GetMasterEditionPDA returns the master edition account address for a mint.
func GetMasterEditionPDA(mint solana.PublicKey) (solana.PublicKey, uint8, error) {
	return solana.FindProgramAddress(
		[][]byte{
			SeedMetadata,
			TokenMetadataProgramID.Bytes(),
			mint.Bytes(),
			SeedEdition,
		},
		TokenMetadataProgramID,
	)
}

// Serialization helpers (borsh layout)

func serializeString(str string) []byte {
	strBytes := []byte(str)
	lengthBytes := make([]byte, 4)
	binary.LittleEndian.PutUint32(lengthBytes, uint32(len(strBytes)))
	return append(lengthBytes, strBytes...)
}

func serializeU16(value uint16) []byte {
	b := make([]byte, 2)
	binary.LittleEndian.PutUint16(b, value)
	return b
}

func serializeU64(value uint64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, value)
	return b
}

func serializeBool(v bool) []byte {
	if v {
		return []byte{1}
	}
	return []byte{0}
}

func serializeCreators(creators []MetadataCreator) []byte {
	if len(creators) == 0 {
		return []byte{0} // Option::None
	}
	buf := []byte{1} // Option::Some
	lengthBytes := make([]byte, 4)
	binary.LittleEndian.PutUint32(lengthBytes, uint32(len(creators)))
	buf = append(buf, lengthBytes...)
	for _, c := range creators {
		buf = append(buf, c.Address.Bytes()...)
		buf = append(buf, serializeBool(c.Verified)...)
		buf = append(buf, c.Share)
	}
	return buf
}

// NewCreateMetadataAccountV3Instruction registers display data for a mint:
// name/symbol/uri, the fixed royalty, the given creators, no collection
// grouping and no uses.
func NewCreateMetadataAccountV3Instruction(
	metadata solana.PublicKey,
	mint solana.PublicKey,
	mintAuthority solana.PublicKey,
	payer solana.PublicKey,
	updateAuthority solana.PublicKey,
	name string,
	symbol string,
	uri string,
	creators []MetadataCreator,
) solana.Instruction {
	data := bytes.Join([][]byte{
		{instructionCreateMetadataAccountV3},
		serializeString(name),
		serializeString(symbol),
		serializeString(uri),
		serializeU16(SellerFeeBasisPoints),
		serializeCreators(creators),
		{0},                // collection: None
		{0},                // uses: None
		serializeBool(true), // is_mutable
		{0},                // collection_details: None
	}, nil)

	accounts := []*solana.AccountMeta{
		{PublicKey: metadata, IsWritable: true, IsSigner: false},
		{PublicKey: mint, IsWritable: false, IsSigner: false},
		{PublicKey: mintAuthority, IsWritable: false, IsSigner: true},
		{PublicKey: payer, IsWritable: true, IsSigner: true},
		{PublicKey: updateAuthority, IsWritable: false, IsSigner: true},
		{PublicKey: solana.SystemProgramID, IsWritable: false, IsSigner: false},
		{PublicKey: solana.SysVarRentPubkey, IsWritable: false, IsSigner: false},
	}

	return solana.NewInstruction(TokenMetadataProgramID, accounts, data)
}

// NewCreateMasterEditionV3Instruction elevates a supply-of-one mint to a master
// edition. maxSupply Some(0) marks it a one-of-one.
func NewCreateMasterEditionV3Instruction(
	edition solana.PublicKey,
	mint solana.PublicKey,
	updateAuthority solana.PublicKey,
	mintAuthority solana.PublicKey,
	payer solana.PublicKey,
	metadata solana.PublicKey,
	maxSupply uint64,
) solana.Instruction {
	data := bytes.Join([][]byte{
		{instructionCreateMasterEditionV3},
		{1}, // Option::Some
		serializeU64(maxSupply),
	}, nil)

	accounts := []*solana.AccountMeta{
		{PublicKey: edition, IsWritable: true, IsSigner: false},
		{PublicKey: mint, IsWritable: true, IsSigner: false},
		{PublicKey: updateAuthority, IsWritable: false, IsSigner: true},
		{PublicKey: mintAuthority, IsWritable: false, IsSigner: true},
		{PublicKey: payer, IsWritable: true, IsSigner: true},
		{PublicKey: metadata, IsWritable: true, IsSigner: false},
		{PublicKey: solana.TokenProgramID, IsWritable: false, IsSigner: false},
		{PublicKey: solana.SystemProgramID, IsWritable: false, IsSigner: false},
		{PublicKey: solana.SysVarRentPubkey, IsWritable: false, IsSigner: false},
	}

	return solana.NewInstruction(TokenMetadataProgramID, accounts, data)
}

// VerifyCreatorShare checks that creator shares sum to exactly 100.
func VerifyCreatorShare(creators []MetadataCreator) error {
	var total int
	for _, c := range creators {
		total += int(c.Share)
	}
	if total != CreatorFullShare {
		return fmt.Errorf("creator shares sum to %d, want %d", total, CreatorFullShare)
	}
	return nil
}

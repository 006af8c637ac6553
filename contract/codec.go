package contract

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"

	"quadra_dao/sdk"
)

type binWriter struct {
	buf bytes.Buffer
}

func newWriter() *binWriter { return &binWriter{} }

func (w *binWriter) bytes() []byte { return w.buf.Bytes() }

func (w *binWriter) writeBool(v bool) {
	if v {
		w.buf.WriteByte(1)
	} else {
		w.buf.WriteByte(0)
	}
}

func (w *binWriter) writeUint64(v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	w.buf.Write(b[:])
}

func (w *binWriter) writeInt64(v int64) {
	w.writeUint64(uint64(v))
}

func (w *binWriter) writeVarUint(v uint64) {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], v)
	w.buf.Write(tmp[:n])
}

func (w *binWriter) writeAmount(v Amount) {
	w.writeInt64(int64(v))
}

func (w *binWriter) writeString(s string) {
	w.writeVarUint(uint64(len(s)))
	w.buf.WriteString(s)
}

func (w *binWriter) writeAddress(a sdk.Address) {
	w.writeString(a.String())
}

type binReader struct {
	r *bytes.Reader
}

func newReader(data []byte) *binReader {
	return &binReader{r: bytes.NewReader(data)}
}

func (r *binReader) readBool() (bool, error) {
	b, err := r.r.ReadByte()
	if err != nil {
		return false, err
	}
	return b == 1, nil
}

func (r *binReader) readUint64() (uint64, error) {
	var b [8]byte
	if _, err := io.ReadFull(r.r, b[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b[:]), nil
}

func (r *binReader) readInt64() (int64, error) {
	v, err := r.readUint64()
	return int64(v), err
}

func (r *binReader) readVarUint() (uint64, error) {
	return binary.ReadUvarint(r.r)
}

func (r *binReader) readAmount() (Amount, error) {
	v, err := r.readInt64()
	return Amount(v), err
}

func (r *binReader) readString() (string, error) {
	n, err := r.readVarUint()
	if err != nil {
		return "", err
	}
	if n > uint64(r.r.Len()) {
		return "", errors.New("string length exceeds remaining data")
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r.r, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}

func (r *binReader) readAddress() (sdk.Address, error) {
	s, err := r.readString()
	return sdk.Address(s), err
}

// -----------------------------------------------------------------------------
// Record codecs
// -----------------------------------------------------------------------------

func EncodeProposal(p *Proposal) []byte {
	w := newWriter()
	w.writeUint64(p.ID)
	w.writeAddress(p.Proposer)
	w.writeAddress(p.Recipient)
	w.writeAmount(p.Amount)
	w.writeString(p.Description)
	w.buf.WriteByte(byte(p.Category))
	w.writeUint64(p.StartBlock)
	w.writeUint64(p.EndBlock)
	w.writeUint64(p.ForVotes)
	w.writeUint64(p.AgainstVotes)
	w.writeUint64(p.AbstainVotes)
	w.writeBool(p.Cancelled)
	w.writeBool(p.Executed)
	w.writeBool(p.Queued)
	w.writeInt64(p.Eta)
	w.writeString(p.Tx)
	return w.bytes()
}

func DecodeProposal(data []byte) (*Proposal, error) {
	r := newReader(data)
	var p Proposal
	var err error
	if p.ID, err = r.readUint64(); err != nil {
		return nil, err
	}
	if p.Proposer, err = r.readAddress(); err != nil {
		return nil, err
	}
	if p.Recipient, err = r.readAddress(); err != nil {
		return nil, err
	}
	if p.Amount, err = r.readAmount(); err != nil {
		return nil, err
	}
	if p.Description, err = r.readString(); err != nil {
		return nil, err
	}
	cat, err := r.r.ReadByte()
	if err != nil {
		return nil, err
	}
	p.Category = Category(cat)
	if p.StartBlock, err = r.readUint64(); err != nil {
		return nil, err
	}
	if p.EndBlock, err = r.readUint64(); err != nil {
		return nil, err
	}
	if p.ForVotes, err = r.readUint64(); err != nil {
		return nil, err
	}
	if p.AgainstVotes, err = r.readUint64(); err != nil {
		return nil, err
	}
	if p.AbstainVotes, err = r.readUint64(); err != nil {
		return nil, err
	}
	if p.Cancelled, err = r.readBool(); err != nil {
		return nil, err
	}
	if p.Executed, err = r.readBool(); err != nil {
		return nil, err
	}
	if p.Queued, err = r.readBool(); err != nil {
		return nil, err
	}
	if p.Eta, err = r.readInt64(); err != nil {
		return nil, err
	}
	if p.Tx, err = r.readString(); err != nil {
		return nil, err
	}
	return &p, nil
}

func EncodeVoteReceipt(v *VoteReceipt) []byte {
	w := newWriter()
	w.buf.WriteByte(byte(v.Support))
	w.writeUint64(v.Weight)
	w.writeInt64(v.VotedAt)
	return w.bytes()
}

func DecodeVoteReceipt(data []byte) (*VoteReceipt, error) {
	r := newReader(data)
	var v VoteReceipt
	sup, err := r.r.ReadByte()
	if err != nil {
		return nil, err
	}
	v.Support = VoteSupport(sup)
	if v.Weight, err = r.readUint64(); err != nil {
		return nil, err
	}
	if v.VotedAt, err = r.readInt64(); err != nil {
		return nil, err
	}
	return &v, nil
}

func EncodeGovernanceParams(p *GovernanceParams) []byte {
	w := newWriter()
	w.writeUint64(p.VotingDelay)
	w.writeUint64(p.VotingPeriod)
	w.writeUint64(p.ProposalThreshold)
	for _, q := range p.QuorumPercent {
		w.writeVarUint(q)
	}
	for _, d := range p.TimelockDelay {
		w.writeInt64(d)
	}
	return w.bytes()
}

func DecodeGovernanceParams(data []byte) (*GovernanceParams, error) {
	r := newReader(data)
	var p GovernanceParams
	var err error
	if p.VotingDelay, err = r.readUint64(); err != nil {
		return nil, err
	}
	if p.VotingPeriod, err = r.readUint64(); err != nil {
		return nil, err
	}
	if p.ProposalThreshold, err = r.readUint64(); err != nil {
		return nil, err
	}
	for i := range p.QuorumPercent {
		if p.QuorumPercent[i], err = r.readVarUint(); err != nil {
			return nil, err
		}
	}
	for i := range p.TimelockDelay {
		if p.TimelockDelay[i], err = r.readInt64(); err != nil {
			return nil, err
		}
	}
	return &p, nil
}

func EncodeContractConfig(c *ContractConfig) []byte {
	w := newWriter()
	w.writeAddress(c.Owner)
	return w.bytes()
}

func DecodeContractConfig(data []byte) (*ContractConfig, error) {
	r := newReader(data)
	var c ContractConfig
	var err error
	if c.Owner, err = r.readAddress(); err != nil {
		return nil, err
	}
	return &c, nil
}

// EncodeAddressList serializes the reverse-index delegator lists.
func EncodeAddressList(addrs []sdk.Address) []byte {
	w := newWriter()
	w.writeVarUint(uint64(len(addrs)))
	for _, a := range addrs {
		w.writeAddress(a)
	}
	return w.bytes()
}

func DecodeAddressList(data []byte) ([]sdk.Address, error) {
	r := newReader(data)
	n, err := r.readVarUint()
	if err != nil {
		return nil, err
	}
	out := make([]sdk.Address, 0, n)
	for i := uint64(0); i < n; i++ {
		a, err := r.readAddress()
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

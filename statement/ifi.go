package statement

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/seanpm2001/xapi/errors"
)

// IFI is an inverse functional identifier: a value that identifies exactly
// one actor. The variant set is closed: Mailbox, MailboxSha1Sum, OpenID,
// and Account are the only implementations, enforced by the unexported
// marker method. An actor carries at most one IFI, fixed at construction.
//
// Serialization dispatches exhaustively on the variant; a value outside the
// closed set reaching the serializer is a defect and produces an
// unimplemented-variant error.
type IFI interface {
	isIFI()
}

// Mailbox identifies an actor by e-mail address. The address is stored
// bare; the serializer owns the mailto: scheme and emits it under the
// "mbox" key.
type Mailbox struct {
	address string
}

// NewMailbox creates a Mailbox identifier from an e-mail address. The
// address must be non-empty, must not already carry the mailto: scheme,
// and must contain an @.
func NewMailbox(address string) (Mailbox, error) {
	if address == "" {
		return Mailbox{}, errors.InvalidArgument("Mailbox", "address", "must not be empty")
	}
	if strings.HasPrefix(address, "mailto:") {
		return Mailbox{}, errors.InvalidArgument("Mailbox", "address",
			"must not include the mailto: scheme; pass the bare address")
	}
	if !strings.Contains(address, "@") {
		return Mailbox{}, errors.InvalidArgument("Mailbox", "address", "must be an e-mail address")
	}
	return Mailbox{address: address}, nil
}

func (Mailbox) isIFI() {}

// Address returns the bare e-mail address.
func (m Mailbox) Address() string {
	return m.address
}

// IRI returns the mailto: form the serializer emits.
func (m Mailbox) IRI() string {
	return "mailto:" + m.address
}

// MailboxSha1Sum identifies an actor by the SHA-1 hash of their mailto IRI,
// for records that must not expose the address itself. Serializes under the
// "mbox_sha1sum" key.
type MailboxSha1Sum struct {
	sum string
}

// NewMailboxSha1Sum creates a MailboxSha1Sum from an already-computed hash.
// The sum must be exactly 40 lowercase hexadecimal characters.
func NewMailboxSha1Sum(sum string) (MailboxSha1Sum, error) {
	if sum == "" {
		return MailboxSha1Sum{}, errors.InvalidArgument("MailboxSha1Sum", "sum", "must not be empty")
	}
	if len(sum) != sha1.Size*2 {
		return MailboxSha1Sum{}, errors.InvalidArgument("MailboxSha1Sum", "sum",
			fmt.Sprintf("must be %d hexadecimal characters, got %d", sha1.Size*2, len(sum)))
	}
	if _, err := hex.DecodeString(sum); err != nil {
		return MailboxSha1Sum{}, errors.InvalidArgument("MailboxSha1Sum", "sum", "must be hexadecimal")
	}
	if sum != strings.ToLower(sum) {
		return MailboxSha1Sum{}, errors.InvalidArgument("MailboxSha1Sum", "sum", "must be lowercase")
	}
	return MailboxSha1Sum{sum: sum}, nil
}

// MailboxSha1SumOf computes the identifier for an e-mail address: the SHA-1
// of its mailto IRI, hex encoded. The address is validated under the same
// rules as NewMailbox.
func MailboxSha1SumOf(address string) (MailboxSha1Sum, error) {
	mbox, err := NewMailbox(address)
	if err != nil {
		return MailboxSha1Sum{}, err
	}
	h := sha1.Sum([]byte(mbox.IRI()))
	return MailboxSha1Sum{sum: hex.EncodeToString(h[:])}, nil
}

func (MailboxSha1Sum) isIFI() {}

// Sum returns the hex-encoded hash.
func (m MailboxSha1Sum) Sum() string {
	return m.sum
}

// OpenID identifies an actor by an openID IRI. Serializes under the
// "openid" key.
type OpenID struct {
	id IRI
}

// NewOpenID creates an OpenID identifier. A zero IRI is rejected as a
// missing argument.
func NewOpenID(id IRI) (OpenID, error) {
	if id.IsZero() {
		return OpenID{}, errors.NilArgument("OpenID", "id")
	}
	return OpenID{id: id}, nil
}

func (OpenID) isIFI() {}

// ID returns the openID IRI.
func (o OpenID) ID() IRI {
	return o.id
}

// Account identifies an actor by a username local to some system, named by
// the system's home page IRI. Serializes under the "account" key as a
// nested object with homePage and name.
type Account struct {
	homePage IRI
	name     string
}

// NewAccount creates an Account identifier. The home page IRI is required
// and the account name must be non-empty.
func NewAccount(homePage IRI, name string) (Account, error) {
	if homePage.IsZero() {
		return Account{}, errors.NilArgument("Account", "homePage")
	}
	if name == "" {
		return Account{}, errors.InvalidArgument("Account", "name", "must not be empty")
	}
	return Account{homePage: homePage, name: name}, nil
}

func (Account) isIFI() {}

// HomePage returns the IRI of the system the account lives on.
func (a Account) HomePage() IRI {
	return a.homePage
}

// Name returns the account name.
func (a Account) Name() string {
	return a.name
}

// accountWire is the nested JSON object shape for Account.
type accountWire struct {
	HomePage IRI    `json:"homePage"`
	Name     string `json:"name"`
}

// ifiWire holds the four mutually exclusive identifier keys of an actor's
// JSON object. Exactly one field is non-nil for an identified actor; all
// four are nil for an unidentified one.
type ifiWire struct {
	Mbox        *string      `json:"mbox,omitempty"`
	MboxSha1Sum *string      `json:"mbox_sha1sum,omitempty"`
	OpenID      *string      `json:"openid,omitempty"`
	Account     *accountWire `json:"account,omitempty"`
}

// newIFIWire dispatches on the identifier variant and fills the matching
// wire key. A nil ifi yields an empty wire. The default arm is unreachable
// for values built through this package's constructors; reaching it means
// the variant set grew without the serializer keeping up.
func newIFIWire(ifi IFI) (ifiWire, error) {
	var wire ifiWire
	if ifi == nil {
		return wire, nil
	}
	switch v := ifi.(type) {
	case Mailbox:
		iri := v.IRI()
		wire.Mbox = &iri
	case MailboxSha1Sum:
		sum := v.Sum()
		wire.MboxSha1Sum = &sum
	case OpenID:
		id := v.ID().String()
		wire.OpenID = &id
	case Account:
		wire.Account = &accountWire{HomePage: v.HomePage(), Name: v.Name()}
	default:
		return wire, errors.Unimplemented("IFI",
			fmt.Sprintf("variant %T is not part of the supported identifier set", ifi))
	}
	return wire, nil
}

// ifiIsZero reports whether ifi is a non-nil variant holding its zero
// value, which can only arise from bypassing the constructors.
func ifiIsZero(ifi IFI) bool {
	switch v := ifi.(type) {
	case Mailbox:
		return v.address == ""
	case MailboxSha1Sum:
		return v.sum == ""
	case OpenID:
		return v.id.IsZero()
	case Account:
		return v.homePage.IsZero() && v.name == ""
	default:
		return false
	}
}

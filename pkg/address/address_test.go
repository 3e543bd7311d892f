package address_test

import (
	"encoding/hex"
	"strings"

	"txquery/pkg/address"

	"github.com/ethereum/go-ethereum/crypto"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Address", func() {
	var publicKey string

	BeforeEach(func() {
		key, err := crypto.GenerateKey()
		Expect(err).NotTo(HaveOccurred())
		publicKey = hex.EncodeToString(crypto.CompressPubkey(&key.PublicKey))
	})

	Describe("FromPublicKey", func() {
		It("should derive a mainnet address starting with A", func() {
			addr, err := address.FromPublicKey(publicKey, address.MainnetVersion)
			Expect(err).NotTo(HaveOccurred())
			Expect(addr).To(HavePrefix("A"))
			Expect(address.Validate(addr, address.MainnetVersion)).To(Succeed())
		})

		It("should derive a devnet address starting with D", func() {
			addr, err := address.FromPublicKey(publicKey, 0x1e)
			Expect(err).NotTo(HaveOccurred())
			Expect(addr).To(HavePrefix("D"))
		})

		It("should be deterministic", func() {
			first, err := address.FromPublicKey(publicKey, address.MainnetVersion)
			Expect(err).NotTo(HaveOccurred())
			second, err := address.FromPublicKey(publicKey, address.MainnetVersion)
			Expect(err).NotTo(HaveOccurred())
			Expect(first).To(Equal(second))
		})

		When("the key is not hex", func() {
			It("should return ErrInvalidPublicKey", func() {
				_, err := address.FromPublicKey("zz", address.MainnetVersion)
				Expect(err).To(MatchError(address.ErrInvalidPublicKey))
			})
		})

		When("the key has the wrong length", func() {
			It("should return ErrInvalidPublicKey", func() {
				_, err := address.FromPublicKey(publicKey[:40], address.MainnetVersion)
				Expect(err).To(MatchError(address.ErrInvalidPublicKey))
			})
		})

		When("the key is not on the curve", func() {
			It("should return ErrInvalidPublicKey", func() {
				_, err := address.FromPublicKey("02"+strings.Repeat("ff", 32), address.MainnetVersion)
				Expect(err).To(MatchError(address.ErrInvalidPublicKey))
			})
		})
	})

	Describe("Validate", func() {
		It("should reject an address of another network", func() {
			addr, err := address.FromPublicKey(publicKey, 0x1e)
			Expect(err).NotTo(HaveOccurred())
			Expect(address.Validate(addr, address.MainnetVersion)).To(MatchError(address.ErrInvalidAddress))
		})

		It("should reject a corrupted checksum", func() {
			addr, err := address.FromPublicKey(publicKey, address.MainnetVersion)
			Expect(err).NotTo(HaveOccurred())
			last := addr[len(addr)-1]
			replacement := "1"
			if last == '1' {
				replacement = "2"
			}
			Expect(address.Validate(addr[:len(addr)-1]+replacement, address.MainnetVersion)).
				To(MatchError(address.ErrInvalidAddress))
		})
	})
})

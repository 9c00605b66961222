package chrocalc

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
	. "github.com/onsi/gomega/gstruct"
)

var _ = Describe("Chromosome", func() {
	DescribeTable("Decode",
		func(geneExpr string, expectedValidity string, expectedDecodedExpr string) {
			chromosome, err := EncodeExpression(geneExpr)
			Expect(err).ToNot(HaveOccurred())

			decoded := chromosome.Decode()
			Expect(*decoded).To(MatchFields(IgnoreExtras, Fields{
				"Expression": Equal(expectedDecodedExpr),
				"Validity":   Equal(expectedValidity),
			}))
		},
		Entry("5", "5", "+", "5"),
		Entry("0", "0", "+", "0"),
		Entry("+", "+", "-", ""),
		Entry("1+2", "1+2", "+++", "1+2"),
		Entry("1-2", "1-2", "+++", "1-2"),
		Entry("1*2", "1*2", "+++", "1*2"),
		Entry("1/2", "1/2", "+++", "1/2"),

		// Trailing operators are dropped
		Entry("1+", "1+", "+-", "1"),
		Entry("12+", "12+", "+--", "1"),

		// Consecutive symbols of the wrong kind are skipped
		Entry("1++2", "1++2", "++-+", "1+2"),
		Entry("+1+2", "+1+2", "-+++", "1+2"),
		Entry("12+34", "12+34", "+-++-", "1+3"),
		Entry("*/+-", "*/+-", "----", ""),

		Entry("2+3*4-6/2", "2+3*4-6/2", "+++++++++", "2+3*4-6/2"),
	)

	DescribeTable("Decode (raw)",
		func(geneString string, expectedValidity string, expectedDecodedExpr string) {
			chromosome, err := ChromosomeFromGeneString(geneString)
			Expect(err).ToNot(HaveOccurred())

			decoded := chromosome.Decode()
			Expect(*decoded).To(MatchFields(IgnoreExtras, Fields{
				"Expression": Equal(expectedDecodedExpr),
				"Validity":   Equal(expectedValidity),
			}))
		},
		Entry("unassigned codes decode to nothing",
			"1110 1111", "??", ""),
		Entry("unassigned codes between valid genes are skipped",
			"0001 1110 1010 0010", "+?++", "1+2"),
		Entry("digit, operator, digit",
			"0111 1100 1001", "+++", "7*9"),
	)

	DescribeTable("Single gene",
		func(geneExpr string, expectedTokenCount int) {
			chromosome, err := EncodeExpression(geneExpr)
			Expect(err).ToNot(HaveOccurred())

			Expect(chromosome.Decode().Tokens).To(HaveLen(expectedTokenCount))
		},
		Entry("digit 0", "0", 1),
		Entry("digit 9", "9", 1),
		Entry("operator +", "+", 0),
		Entry("operator -", "-", 0),
		Entry("operator *", "*", 0),
		Entry("operator /", "/", 0),
	)

	It("decodes to an alternating sequence ending in a digit", func() {
		rng := newTestRand(42)
		for i := 0; i < 500; i++ {
			chromosome, err := RandomChromosome(3+rng.Intn(40), rng)
			Expect(err).ToNot(HaveOccurred())

			tokens := chromosome.Decode().Tokens
			for k, token := range tokens {
				if k%2 == 0 {
					Expect(token.IsDigit()).To(BeTrue())
				} else {
					Expect(token.IsOperator()).To(BeTrue())
				}
			}
			if len(tokens) > 0 {
				Expect(tokens[len(tokens)-1].IsDigit()).To(BeTrue())
			}
		}
	})

	It("round-trips through the gene string form", func() {
		rng := newTestRand(7)
		chromosome, err := RandomChromosome(20, rng)
		Expect(err).ToNot(HaveOccurred())

		parsed, err := ChromosomeFromGeneString(chromosome.String())
		Expect(err).ToNot(HaveOccurred())
		Expect(parsed.Equal(chromosome)).To(BeTrue())
	})

	It("rejects lengths below the minimum", func() {
		rng := newTestRand(1)
		_, err := RandomChromosome(2, rng)
		Expect(err).To(MatchError(ErrInvalidArgument))
	})
})

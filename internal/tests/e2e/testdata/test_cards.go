package testdata

// Cards understood by the bank simulator: the last digit decides the answer.
type TestCard struct {
	CardNumber  string
	CVV         string
	ExpiryMonth int
	ExpiryYear  int
	Description string
}

var (
	AuthorizedCard = TestCard{
		CardNumber:  "2222405343248877",
		CVV:         "123",
		ExpiryMonth: 4,
		ExpiryYear:  2030,
		Description: "Odd last digit, authorized",
	}

	DeclinedCard = TestCard{
		CardNumber:  "2222405343248112",
		CVV:         "456",
		ExpiryMonth: 1,
		ExpiryYear:  2031,
		Description: "Even last digit, declined",
	}

	UnavailableCard = TestCard{
		CardNumber:  "2222405343248870",
		CVV:         "789",
		ExpiryMonth: 12,
		ExpiryYear:  2030,
		Description: "Last digit zero, bank answers 503",
	}
)

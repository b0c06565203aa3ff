package fixtures

// Canned Checkout API response bodies, as returned by the test environment.
const (
	PaymentRedirectResponse = `{
  "pspReference": "993617895204576J",
  "resultCode": "RedirectShopper",
  "action": {
    "method": "GET",
    "paymentMethodType": "scheme",
    "type": "redirect",
    "url": "https://checkoutshopper-test.adyen.com/checkoutshopper/threeDS/redirect?MD=M2R..."
  }
}`

	PaymentMethodsResponse = `{"paymentMethods": [{"name": "Pay later with Klarna.", "type": "klarna"}]}`

	PaymentLinkCreatedResponse = `{
  "amount": {"currency": "EUR", "value": 1250},
  "expiresAt": "2021-04-09T14:17:31Z",
  "reference": "shopper-reference-ekvL83",
  "url": "https://test.adyen.link/PL6DB3157D27FFBBCF",
  "id": "foo",
  "merchantAccount": "myMerchantAccount",
  "status": "active"
}`

	PaymentLinkExpiredResponse = `{
  "amount": {"currency": "EUR", "value": 8700},
  "id": "paymentLinkId",
  "countryCode": "NL",
  "expiresAt": "2021-04-08T14:06:39Z",
  "merchantAccount": "TestMerchantCheckout",
  "reference": "shopper-reference",
  "shopperLocale": "hu-HU",
  "shopperReference": "shopper-reference",
  "status": "expired",
  "url": "https://test.adyen.link/PL61C53A8B97E6915A"
}`

	PaymentDetailsResponse = `{"resultCode": "Authorised", "pspReference": "V4HZ4RBFJGXXGN82"}`

	SessionResponse = `{
  "amount": {"currency": "EUR", "value": 100},
  "countryCode": "NL",
  "expiresAt": "2022-10-11T16:54:37+02:00",
  "id": "CS1453E3730C313478",
  "merchantAccount": "YOUR_MERCHANT_ACCOUNT",
  "recurringProcessingModel": "CardOnFile",
  "reference": "YOUR_PAYMENT_REFERENCE",
  "returnUrl": "https://your-company.com/checkout?shopperOrder=12xy..",
  "sessionData": "Ab02b4c0!BFHSPFBQTEwM0NBNTM3RfCf5"
}`

	PaymentResultResponse = `{
  "merchantReference": "YOUR_MERCHANT_ACCOUNT",
  "shopperLocale": "NL",
  "resultCode": "Authorised",
  "pspReference": "V4HZ4RBFJGXXGN82"
}`

	OrderResponse = `{
  "pspReference": "8616178914061985",
  "resultCode": "Success",
  "expiresAt": "2021-04-09T14:16:46Z",
  "orderData": "Abzt3JH4wnzErMnOZwSdgA==",
  "reference": "shopper-reference-ekvL83",
  "remainingAmount": {"currency": "EUR", "value": 2500},
  "amount": {"currency": "EUR", "value": 2500}
}`

	OrderCancelResponse = `{"pspReference": "8816178914079738", "resultCode": "Received"}`

	ApplePaySessionResponse = `{"data": "eyJ2Z"}`

	DonationResponse = `{
  "id": "UNIQUE_RESOURCE_ID",
  "status": "completed",
  "donationAccount": "CHARITY_ACCOUNT",
  "merchantAccount": "YOUR_MERCHANT_ACCOUNT",
  "amount": {"currency": "EUR", "value": 1000},
  "reference": "YOUR_DONATION_REFERENCE",
  "payment": {
    "pspReference": "8535762347980628",
    "resultCode": "Authorised",
    "amount": {"currency": "EUR", "value": 1000},
    "merchantReference": "YOUR_DONATION_REFERENCE"
  }
}`

	CardDetailsResponse = `{
  "brands": [
    {"type": "visa", "supported": "true"},
    {"type": "cartebancaire", "supported": "true"}
  ]
}`

	BalanceCheckResponse = `{
  "balance": {"currency": "EUR", "value": 5000},
  "pspReference": "851611111111713K",
  "resultCode": "Success"
}`

	CaptureResponse = `{
  "amount": {"currency": "EUR", "value": 1000},
  "merchantAccount": "YOUR_MERCHANT_ACCOUNT",
  "paymentPspReference": "993617895204576J",
  "pspReference": "JDD6LKT8MBLZNN84",
  "reference": "YOUR_UNIQUE_REFERENCE",
  "status": "received"
}`

	RefundResponse = `{
  "amount": {"currency": "EUR", "value": 500},
  "merchantAccount": "YOUR_MERCHANT_ACCOUNT",
  "paymentPspReference": "993617895204576J",
  "pspReference": "KHQC5N7G84BLNK43",
  "reference": "YOUR_UNIQUE_REFERENCE",
  "status": "received"
}`

	CancelResponse = `{
  "merchantAccount": "YOUR_MERCHANT_ACCOUNT",
  "paymentPspReference": "993617895204576J",
  "pspReference": "ZV9LK7MN3ZD1ZN42",
  "reference": "YOUR_UNIQUE_REFERENCE",
  "status": "received"
}`

	AmountUpdateResponse = `{
  "amount": {"currency": "EUR", "value": 2500},
  "merchantAccount": "YOUR_MERCHANT_ACCOUNT",
  "paymentPspReference": "993617895204576J",
  "pspReference": "JVBXGSDM53RZNN82",
  "reference": "YOUR_UNIQUE_REFERENCE",
  "status": "received"
}`

	StandaloneCancelResponse = `{
  "merchantAccount": "YOUR_MERCHANT_ACCOUNT",
  "paymentReference": "YOUR_ORIGINAL_PAYMENT_REFERENCE",
  "pspReference": "861633338418518C",
  "reference": "YOUR_UNIQUE_REFERENCE",
  "status": "received"
}`

	// ValidationErrorResponse is returned with status 422.
	ValidationErrorResponse = `{"status": 422, "errorCode": "14_0391", "message": "Invalid redirectResult provided", "errorType": "validation", "pspReference": "J5C22LHW7QHG5S82"}`

	// UnauthorizedErrorResponse is returned with status 401.
	UnauthorizedErrorResponse = `{"status": 401, "errorCode": "000", "message": "HTTP Status Response - Unauthorized", "errorType": "security"}`
)

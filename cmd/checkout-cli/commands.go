package main

import (
	"context"
	"fmt"

	"github.com/companieshouse/checkout.client.ch.gov.uk/helpers"
	"github.com/companieshouse/checkout.client.ch.gov.uk/models"
	"github.com/companieshouse/chs.go/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentLookups bounds parallel payment link lookups.
const maxConcurrentLookups = 4

// requestCmd builds a command that posts the request file given by --file.
func requestCmd[Req, Resp any](a *app, use, short string, call func(context.Context, *Req, helpers.RequestOptions) (*Resp, error)) *cobra.Command {
	var file, idempotencyKey string

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := new(Req)
			if err := loadRequest(file, a.cfg.MerchantAccount, req); err != nil {
				return err
			}

			resp, err := call(cmd.Context(), req, helpers.RequestOptions{IdempotencyKey: idempotencyKey})
			if err != nil {
				log.Error(err, log.Data{"command": use})
				return err
			}
			return printResponse(cmd.OutOrStdout(), resp)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "JSON or YAML request body")
	cmd.Flags().StringVar(&idempotencyKey, "idempotency-key", "", "Idempotency-Key header value")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func paymentsCmd(a *app) *cobra.Command {
	return requestCmd(a, "payments", "Start a transaction", func(ctx context.Context, req *models.PaymentRequest, o helpers.RequestOptions) (*models.PaymentResponse, error) {
		return a.svc.Payments(ctx, req, o)
	})
}

func paymentMethodsCmd(a *app) *cobra.Command {
	cmd := requestCmd(a, "payment-methods", "List the payment methods available for a transaction", func(ctx context.Context, req *models.PaymentMethodsRequest, o helpers.RequestOptions) (*models.PaymentMethodsResponse, error) {
		return a.svc.PaymentMethods(ctx, req, o)
	})
	cmd.AddCommand(requestCmd(a, "balance", "Check the balance of a gift card or prepaid card", func(ctx context.Context, req *models.CheckoutBalanceCheckRequest, o helpers.RequestOptions) (*models.CheckoutBalanceCheckResponse, error) {
		return a.svc.PaymentMethodsBalance(ctx, req, o)
	}))
	return cmd
}

func detailsCmd(a *app) *cobra.Command {
	return requestCmd(a, "details", "Submit details for a payment that returned an action", func(ctx context.Context, req *models.PaymentDetailsRequest, o helpers.RequestOptions) (*models.PaymentDetailsResponse, error) {
		return a.svc.PaymentsDetails(ctx, req, o)
	})
}

func sessionsCmd(a *app) *cobra.Command {
	return requestCmd(a, "sessions", "Create a payment session", func(ctx context.Context, req *models.CreateCheckoutSessionRequest, o helpers.RequestOptions) (*models.CreateCheckoutSessionResponse, error) {
		return a.svc.Sessions(ctx, req, o)
	})
}

func linksCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "links",
		Short: "Manage payment links",
	}

	cmd.AddCommand(requestCmd(a, "create", "Create a payment link", func(ctx context.Context, req *models.CreatePaymentLinkRequest, o helpers.RequestOptions) (*models.PaymentLinkResponse, error) {
		return a.svc.PaymentLinks(ctx, req, o)
	}))

	cmd.AddCommand(&cobra.Command{
		Use:   "get <linkId>...",
		Short: "Retrieve one or more payment links",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			links, err := getLinks(cmd.Context(), a, args)
			if err != nil {
				return err
			}
			return printResponse(cmd.OutOrStdout(), links)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "expire <linkId>",
		Short: "Expire a payment link",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			link, err := a.svc.PatchPaymentLinks(cmd.Context(), args[0], &models.UpdatePaymentLinkRequest{Status: models.PaymentLinkStatusExpired})
			if err != nil {
				log.Error(err, log.Data{"link_id": args[0]})
				return err
			}
			return printResponse(cmd.OutOrStdout(), link)
		},
	})

	return cmd
}

// getLinks fetches every id concurrently. Results keep the order of ids and
// the first failure cancels the rest.
func getLinks(ctx context.Context, a *app, ids []string) ([]*models.PaymentLinkResponse, error) {
	links := make([]*models.PaymentLinkResponse, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentLookups)
	for i, id := range ids {
		g.Go(func() error {
			link, err := a.svc.GetPaymentLinks(ctx, id)
			if err != nil {
				log.Error(err, log.Data{"link_id": id})
				return fmt.Errorf("error getting payment link %s: [%w]", id, err)
			}
			links[i] = link
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return links, nil
}

// modificationCmds builds the commands that modify an authorised payment.
func modificationCmds(a *app) []*cobra.Command {
	return []*cobra.Command{
		modificationCmd(a, "capture", "Capture an authorised payment", a.captures),
		modificationCmd(a, "refund", "Refund a captured payment", a.refunds),
		modificationCmd(a, "cancel", "Cancel an authorised payment", a.cancels),
		modificationCmd(a, "reverse", "Refund or cancel a payment", a.reversals),
		modificationCmd(a, "update-amount", "Change the authorised amount", a.amountUpdates),
	}
}

func modificationCmd[Req, Resp any](a *app, use, short string, call func(context.Context, string, *Req, helpers.RequestOptions) (*Resp, error)) *cobra.Command {
	var file, idempotencyKey string

	cmd := &cobra.Command{
		Use:   use + " <pspReference>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := new(Req)
			if err := loadRequest(file, a.cfg.MerchantAccount, req); err != nil {
				return err
			}

			resp, err := call(cmd.Context(), args[0], req, helpers.RequestOptions{IdempotencyKey: idempotencyKey})
			if err != nil {
				log.Error(err, log.Data{"command": use, "psp_reference": args[0]})
				return err
			}
			return printResponse(cmd.OutOrStdout(), resp)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "JSON or YAML request body")
	cmd.Flags().StringVar(&idempotencyKey, "idempotency-key", "", "Idempotency-Key header value")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func (a *app) captures(ctx context.Context, psp string, req *models.PaymentCaptureRequest, o helpers.RequestOptions) (*models.PaymentCaptureResponse, error) {
	return a.svc.Captures(ctx, psp, req, o)
}

func (a *app) refunds(ctx context.Context, psp string, req *models.PaymentRefundRequest, o helpers.RequestOptions) (*models.PaymentRefundResponse, error) {
	return a.svc.Refunds(ctx, psp, req, o)
}

func (a *app) cancels(ctx context.Context, psp string, req *models.PaymentCancelRequest, o helpers.RequestOptions) (*models.PaymentCancelResponse, error) {
	return a.svc.Cancels(ctx, psp, req, o)
}

func (a *app) reversals(ctx context.Context, psp string, req *models.PaymentReversalRequest, o helpers.RequestOptions) (*models.PaymentReversalResponse, error) {
	return a.svc.Reversals(ctx, psp, req, o)
}

func (a *app) amountUpdates(ctx context.Context, psp string, req *models.PaymentAmountUpdateRequest, o helpers.RequestOptions) (*models.PaymentAmountUpdateResponse, error) {
	return a.svc.AmountUpdates(ctx, psp, req, o)
}

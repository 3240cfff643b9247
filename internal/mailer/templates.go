package mailer

import (
	"fmt"
	"strings"

	"wooders/internal/domain"
)

func statusColor(s domain.OrderStatus) string {
	switch s {
	case domain.OrderPending:
		return "#f59e0b"
	case domain.OrderProcessing:
		return "#3b82f6"
	case domain.OrderShipped:
		return "#8b5cf6"
	case domain.OrderDelivered:
		return "#10b981"
	case domain.OrderCancelled:
		return "#ef4444"
	default:
		return "#6b7280"
	}
}

func statusText(s domain.OrderStatus) string {
	switch s {
	case domain.OrderPending:
		return "Pending"
	case domain.OrderProcessing:
		return "Processing"
	case domain.OrderShipped:
		return "Shipped"
	case domain.OrderDelivered:
		return "Delivered"
	case domain.OrderCancelled:
		return "Cancelled"
	default:
		return string(s)
	}
}

func orderConfirmationHTML(o *domain.Order) string {
	var items strings.Builder
	for _, it := range o.Items {
		fmt.Fprintf(&items, `
    <tr>
      <td style="padding: 12px; border-bottom: 1px solid #e5e7eb;"><strong>%s</strong></td>
      <td style="padding: 12px; border-bottom: 1px solid #e5e7eb; text-align: center;">%d</td>
      <td style="padding: 12px; border-bottom: 1px solid #e5e7eb; text-align: right;">$%.2f</td>
      <td style="padding: 12px; border-bottom: 1px solid #e5e7eb; text-align: right;">$%.2f</td>
    </tr>`, it.Name, it.Quantity, it.Price, float64(it.Quantity)*it.Price)
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>New Order Received</title></head>
<body style="margin: 0; padding: 0; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; background-color: #f9fafb;">
  <div style="max-width: 600px; margin: 0 auto; background-color: #ffffff;">
    <div style="background: linear-gradient(135deg, #1f2937 0%%, #374151 100%%); padding: 40px 30px; text-align: center;">
      <h1 style="color: #ffffff; margin: 0; font-size: 28px; font-weight: 700;">Wooders Rwanda</h1>
      <p style="color: #d1d5db; margin: 8px 0 0 0; font-size: 16px;">New Order Received</p>
    </div>
    <div style="padding: 40px 30px;">
      <h2 style="color: #1f2937; margin: 0 0 20px 0; font-size: 24px;">Order #%s</h2>
      <div style="background-color: #f3f4f6; padding: 20px; border-radius: 8px; margin-bottom: 30px;">
        <h3 style="margin: 0 0 15px 0; color: #1f2937; font-size: 18px;">Customer Information</h3>
        <p style="margin: 5px 0; color: #374151;"><strong>Name:</strong> %s</p>
        <p style="margin: 5px 0; color: #374151;"><strong>Email:</strong> %s</p>
        <p style="margin: 5px 0; color: #374151;"><strong>Phone:</strong> %s</p>
        <p style="margin: 5px 0; color: #374151;"><strong>Shipping Address:</strong> %s</p>
      </div>
      <h3 style="margin: 30px 0 15px 0; color: #1f2937; font-size: 18px;">Order Items</h3>
      <table style="width: 100%%; border-collapse: collapse; border: 1px solid #e5e7eb;">
        <thead>
          <tr style="background-color: #f9fafb;">
            <th style="padding: 12px; text-align: left;">Product</th>
            <th style="padding: 12px; text-align: center;">Qty</th>
            <th style="padding: 12px; text-align: right;">Price</th>
            <th style="padding: 12px; text-align: right;">Total</th>
          </tr>
        </thead>
        <tbody>%s</tbody>
        <tfoot>
          <tr style="background-color: #f9fafb;">
            <td colspan="3" style="padding: 15px; text-align: right; font-weight: 600;">Total Amount:</td>
            <td style="padding: 15px; text-align: right; font-weight: 700; font-size: 18px;">$%.2f</td>
          </tr>
        </tfoot>
      </table>
      <div style="margin-top: 30px; padding: 20px; background-color: #fef3c7; border: 1px solid #f59e0b; border-radius: 8px;">
        <p style="margin: 0; color: #92400e; font-weight: 500;"><strong>Action Required:</strong> Please process this order and update the status accordingly.</p>
      </div>
    </div>
    <div style="background-color: #f9fafb; padding: 30px; text-align: center; border-top: 1px solid #e5e7eb;">
      <p style="margin: 0; color: #6b7280; font-size: 14px;">This email was sent by Wooders Rwanda</p>
    </div>
  </div>
</body>
</html>`,
		o.OrderNumber, o.CustomerName, o.CustomerEmail, o.CustomerPhone,
		o.ShippingAddress, items.String(), o.TotalAmount)
}

func orderStatusUpdateHTML(o *domain.Order) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Order Status Update</title></head>
<body style="margin: 0; padding: 0; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; background-color: #f9fafb;">
  <div style="max-width: 600px; margin: 0 auto; background-color: #ffffff;">
    <div style="background: linear-gradient(135deg, #1f2937 0%%, #374151 100%%); padding: 40px 30px; text-align: center;">
      <h1 style="color: #ffffff; margin: 0; font-size: 28px; font-weight: 700;">Wooders Rwanda</h1>
      <p style="color: #d1d5db; margin: 8px 0 0 0; font-size: 16px;">Order Status Update</p>
    </div>
    <div style="padding: 40px 30px;">
      <h2 style="color: #1f2937; margin: 0 0 20px 0; font-size: 24px;">Hello %s,</h2>
      <p style="color: #374151; font-size: 16px;">The status of your order <strong>#%s</strong> has been updated.</p>
      <div style="margin: 30px 0; text-align: center;">
        <span style="display: inline-block; padding: 12px 24px; background-color: %s; color: #ffffff; border-radius: 9999px; font-weight: 600; font-size: 16px;">%s</span>
      </div>
      <p style="color: #374151; font-size: 16px;">You can track your order anytime using your order number on our website.</p>
    </div>
    <div style="background-color: #f9fafb; padding: 30px; text-align: center; border-top: 1px solid #e5e7eb;">
      <p style="margin: 0; color: #6b7280; font-size: 14px;">This email was sent by Wooders Rwanda</p>
    </div>
  </div>
</body>
</html>`,
		o.CustomerName, o.OrderNumber, statusColor(o.Status), statusText(o.Status))
}

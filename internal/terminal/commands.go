package terminal

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	appErrors "github.com/aaravmahajanofficial/cellsync-pos/internal/errors"
	"github.com/aaravmahajanofficial/cellsync-pos/internal/models"
)

func (t *Terminal) register() {
	t.handle("login", "login <email> <password>", "start a session", 2, t.login)
	t.handle("logout", "logout", "end the session", 0, t.logout)
	t.handle("whoami", "whoami", "show the logged in user", 0, t.whoami)
	t.handle("products", "products [query]", "list products, filtered by name", 0, t.products)
	t.handle("add", "add <id>", "add one unit of a product to the cart", 1, t.add)
	t.handle("inc", "inc <id>", "one more unit of a cart line", 1, t.changeBy(1))
	t.handle("dec", "dec <id>", "one less unit of a cart line", 1, t.changeBy(-1))
	t.handle("qty", "qty <id> <delta>", "change a cart line by delta units", 2, t.quantity)
	t.handle("remove", "remove <id>", "drop a cart line", 1, t.remove)
	t.handle("cart", "cart", "show the cart and its total", 0, t.showCart)
	t.handle("checkout", "checkout", "open payment for the cart", 0, t.checkout)
	t.handle("method", "method <cash|card|pix>", "choose the payment method", 1, t.method)
	t.handle("tender", "tender <amount>", "cash handed over by the customer", 1, t.tender)
	t.handle("confirm", "confirm", "finish the sale", 0, t.confirm)
	t.handle("cancel", "cancel", "close payment, keep the cart", 0, t.cancel)
	t.handle("stock", "stock [query]", "inventory by name or IMEI", 0, t.stock)
	t.handle("orders", "orders [all|open|completed]", "service orders", 0, t.orders)
	t.handle("customers", "customers [query]", "customers by name, phone or e-mail", 0, t.customers)
	t.handle("finance", "finance [all|receita|despesa]", "finance entries and balance", 0, t.finance)
	t.handle("dashboard", "dashboard", "today's numbers", 0, t.dashboard)
}

func (t *Terminal) money(m models.Money) string {
	return m.Format(t.symbol)
}

func (t *Terminal) table() *tabwriter.Writer {
	return tabwriter.NewWriter(t.out, 0, 0, 2, ' ', 0)
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, appErrors.ValidationError(fmt.Sprintf("Invalid id %q", s))
	}

	return id, nil
}

func unavailable(feature string) error {
	return appErrors.BadRequestError(feature + " is not available")
}

func (t *Terminal) login(ctx context.Context, args []string) error {
	if t.svc.Auth == nil {
		return unavailable("Login")
	}

	name, err := t.svc.Auth.Login(ctx, args[0], strings.Join(args[1:], " "))
	if err != nil {
		return err
	}

	fmt.Fprintf(t.out, "Welcome, %s.\n", name)

	return nil
}

func (t *Terminal) logout(ctx context.Context, _ []string) error {
	if t.svc.Auth == nil {
		return unavailable("Logout")
	}

	if err := t.svc.Auth.Logout(ctx); err != nil {
		return err
	}

	fmt.Fprintln(t.out, "Logged out.")

	return nil
}

func (t *Terminal) whoami(ctx context.Context, _ []string) error {
	if t.svc.Auth == nil {
		return unavailable("Login")
	}

	name, err := t.svc.Auth.CurrentUser(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(t.out, name)

	return nil
}

func (t *Terminal) products(ctx context.Context, args []string) error {
	items, err := t.svc.Catalog.Search(ctx, strings.Join(args, " "))
	if err != nil {
		return err
	}

	if len(items) == 0 {
		fmt.Fprintln(t.out, "No products found.")
		return nil
	}

	w := t.table()
	fmt.Fprintln(w, "ID\tNAME\tPRICE\tSTOCK")

	for _, item := range items {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\n", item.ID, item.Name, t.money(item.Price), item.Available)
	}

	return w.Flush()
}

func (t *Terminal) add(ctx context.Context, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	item, err := t.svc.Catalog.Get(ctx, id)
	if err != nil {
		return err
	}

	t.svc.Cart.AddItem(*item)

	fmt.Fprintf(t.out, "Added %s (x%d). Total %s\n", item.Name, t.svc.Cart.Quantity(id), t.money(t.svc.Cart.Total()))

	return nil
}

func (t *Terminal) changeBy(delta int) func(context.Context, []string) error {
	return func(_ context.Context, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		return t.applyDelta(id, delta)
	}
}

func (t *Terminal) quantity(_ context.Context, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	delta, err := strconv.Atoi(args[1])
	if err != nil {
		return appErrors.ValidationError(fmt.Sprintf("Invalid quantity change %q", args[1]))
	}

	return t.applyDelta(id, delta)
}

func (t *Terminal) applyDelta(id int64, delta int) error {
	if t.svc.Cart.Quantity(id) == 0 {
		return appErrors.NotFoundError(fmt.Sprintf("Product %d is not in the cart", id))
	}

	t.svc.Cart.ChangeQuantity(id, delta)

	if qty := t.svc.Cart.Quantity(id); qty > 0 {
		fmt.Fprintf(t.out, "Product %d: x%d. Total %s\n", id, qty, t.money(t.svc.Cart.Total()))
	} else {
		fmt.Fprintf(t.out, "Product %d removed. Total %s\n", id, t.money(t.svc.Cart.Total()))
	}

	return nil
}

func (t *Terminal) remove(_ context.Context, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	t.svc.Cart.RemoveItem(id)

	fmt.Fprintf(t.out, "Product %d removed. Total %s\n", id, t.money(t.svc.Cart.Total()))

	return nil
}

func (t *Terminal) showCart(_ context.Context, _ []string) error {
	lines := t.svc.Cart.Lines()
	if len(lines) == 0 {
		fmt.Fprintln(t.out, "Cart is empty.")
		return nil
	}

	w := t.table()
	fmt.Fprintln(w, "ID\tNAME\tQTY\tUNIT\tSUBTOTAL")

	for _, l := range lines {
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\n", l.ItemID, l.Name, l.Quantity, t.money(l.UnitPrice), t.money(l.Subtotal()))
	}

	fmt.Fprintf(w, "\t\t\tTOTAL\t%s\n", t.money(t.svc.Cart.Total()))

	return w.Flush()
}

func (t *Terminal) checkout(_ context.Context, _ []string) error {
	if err := t.svc.Checkout.Begin(); err != nil {
		return err
	}

	fmt.Fprintf(t.out, "Total %s. Paying with %s.\n", t.money(t.svc.Cart.Total()), t.svc.Checkout.Method())
	fmt.Fprintln(t.out, "Use method, tender, then confirm or cancel.")

	return nil
}

func (t *Terminal) method(_ context.Context, args []string) error {
	method, err := models.ParsePaymentMethod(args[0])
	if err != nil {
		return appErrors.ValidationError(fmt.Sprintf("Unknown payment method %q, use cash, card or pix", args[0]))
	}

	if err := t.svc.Checkout.SelectMethod(method); err != nil {
		return err
	}

	fmt.Fprintf(t.out, "Paying with %s.\n", method)

	return nil
}

func (t *Terminal) tender(_ context.Context, args []string) error {
	if err := t.svc.Checkout.SetTendered(strings.Join(args, "")); err != nil {
		return err
	}

	if !t.svc.Checkout.Method().CarriesChange() {
		fmt.Fprintf(t.out, "Tendered %s.\n", t.money(t.svc.Checkout.Tendered()))
		return nil
	}

	change := t.svc.Checkout.PendingChange()
	if change.IsNegative() {
		fmt.Fprintf(t.out, "Tendered %s. Missing %s\n", t.money(t.svc.Checkout.Tendered()), t.money(-change))
		return nil
	}

	fmt.Fprintf(t.out, "Tendered %s. Change %s\n", t.money(t.svc.Checkout.Tendered()), t.money(change))

	return nil
}

func (t *Terminal) confirm(ctx context.Context, _ []string) error {
	receipt, err := t.svc.Checkout.Confirm(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(t.out, "Sale completed.")

	w := t.table()
	fmt.Fprintf(w, "Receipt\t%s\n", receipt.ID)
	fmt.Fprintf(w, "Total\t%s\n", t.money(receipt.Total))
	fmt.Fprintf(w, "Method\t%s\n", receipt.Method)

	if receipt.Method.CarriesChange() {
		fmt.Fprintf(w, "Tendered\t%s\n", t.money(receipt.Tendered))
		fmt.Fprintf(w, "Change\t%s\n", t.money(receipt.Change))
	}

	return w.Flush()
}

func (t *Terminal) cancel(_ context.Context, _ []string) error {
	if t.svc.Checkout.State() != models.CheckoutAwaitingPayment {
		return appErrors.InvalidStateError("No checkout in progress")
	}

	t.svc.Checkout.Cancel()

	fmt.Fprintln(t.out, "Payment cancelled, cart kept.")

	return nil
}

func (t *Terminal) stock(ctx context.Context, args []string) error {
	if t.svc.Inventory == nil {
		return unavailable("Inventory")
	}

	items, err := t.svc.Inventory.Search(ctx, strings.Join(args, " "))
	if err != nil {
		return err
	}

	w := t.table()
	fmt.Fprintln(w, "ID\tNAME\tQTY\tMIN\tSTATUS\tIMEI")

	for _, item := range items {
		imei := "-"
		if item.IMEI != nil {
			imei = *item.IMEI
		}

		fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%s\t%s\n", item.ID, item.Name, item.Quantity, item.Minimum, item.StockStatus(), imei)
	}

	if err := w.Flush(); err != nil {
		return err
	}

	summary := t.svc.Inventory.Summarize(items)
	fmt.Fprintf(t.out, "%d items, %d low, %d out of stock\n", summary.Total, summary.Low, summary.OutOfStock)

	return nil
}

func (t *Terminal) orders(ctx context.Context, args []string) error {
	if t.svc.ServiceOrders == nil {
		return unavailable("Service orders")
	}

	filter := models.ServiceOrdersAll
	if len(args) > 0 {
		filter = models.ServiceOrderFilter(strings.ToLower(args[0]))
	}

	orders, err := t.svc.ServiceOrders.List(ctx, filter)
	if err != nil {
		return err
	}

	w := t.table()
	fmt.Fprintln(w, "ID\tCUSTOMER\tDEVICE\tSTATUS\tPRIORITY\tDATE")

	for _, o := range orders {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n", o.ID, o.Customer, o.Device, o.Status.Label(), o.Priority, o.Date)
	}

	if err := w.Flush(); err != nil {
		return err
	}

	stats := t.svc.ServiceOrders.Stats(orders)
	fmt.Fprintf(t.out, "%d orders, %d open, %d completed\n", stats.Total, stats.Open, stats.Completed)

	return nil
}

func (t *Terminal) customers(ctx context.Context, args []string) error {
	if t.svc.Customers == nil {
		return unavailable("Customers")
	}

	customers, err := t.svc.Customers.Search(ctx, strings.Join(args, " "))
	if err != nil {
		return err
	}

	w := t.table()
	fmt.Fprintln(w, "ID\tNAME\tPHONE\tE-MAIL\tPURCHASES\tTIER")

	for _, c := range customers {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%s\n", c.ID, c.Name, c.Phone, c.Email, c.Purchases, c.Tier)
	}

	if err := w.Flush(); err != nil {
		return err
	}

	stats := t.svc.Customers.Stats(customers)
	fmt.Fprintf(t.out, "%d customers, %d platinum, %d gold, %d silver\n", stats.Total, stats.Platinum, stats.Gold, stats.Silver)

	return nil
}

func (t *Terminal) finance(ctx context.Context, args []string) error {
	if t.svc.Finance == nil {
		return unavailable("Finance")
	}

	kind := ""
	if len(args) > 0 {
		kind = strings.ToLower(args[0])
	}

	entries, err := t.svc.Finance.List(ctx, kind)
	if err != nil {
		return err
	}

	w := t.table()
	fmt.Fprintln(w, "ID\tDATE\tKIND\tDESCRIPTION\tCATEGORY\tAMOUNT")

	for _, e := range entries {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n", e.ID, e.Date, e.Kind, e.Description, e.Category, t.money(e.Amount))
	}

	if err := w.Flush(); err != nil {
		return err
	}

	summary := t.svc.Finance.Summarize(entries)
	fmt.Fprintf(t.out, "Income %s, expenses %s, balance %s\n",
		t.money(summary.Income), t.money(summary.Expenses), t.money(summary.Balance))

	return nil
}

func (t *Terminal) dashboard(ctx context.Context, _ []string) error {
	if t.svc.Dashboard == nil {
		return unavailable("Dashboard")
	}

	stats, activities, err := t.svc.Dashboard.Overview(ctx)
	if err != nil {
		return err
	}

	w := t.table()
	fmt.Fprintf(w, "Sales today\t%s\n", t.money(stats.SalesToday))
	fmt.Fprintf(w, "Open service orders\t%d\n", stats.OpenServiceOrders)
	fmt.Fprintf(w, "Products\t%d\n", stats.Products)
	fmt.Fprintf(w, "Customers\t%d\n", stats.Customers)

	if err := w.Flush(); err != nil {
		return err
	}

	if len(activities) > 0 {
		fmt.Fprintln(t.out, "Recent activity:")

		for _, a := range activities {
			fmt.Fprintf(t.out, "  %s  %s\n", a.Date, a.Description)
		}
	}

	return nil
}

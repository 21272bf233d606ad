package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/adilbek-m/saudalink/internal/client/models"
)

// Categories lists the catalog categories.
func (a *App) Categories(ctx context.Context) error {
	categories, err := a.catalog.Categories(ctx)
	if err != nil {
		a.reportError(ctx, "could not load categories", err)
		return err
	}

	for _, c := range categories {
		printlnFn(fmt.Sprintf("[%d] %s", c.ID, c.Name))
		for _, child := range c.Children {
			printlnFn(fmt.Sprintf("    [%d] %s", child.ID, child.Name))
		}
	}
	return nil
}

// Products browses the catalog. A first argument naming a supported currency
// sets the display currency for this listing; the remaining arguments form a
// search query.
func (a *App) Products(ctx context.Context, args []string) error {
	display := a.display
	if len(args) > 0 {
		if c := models.Currency(strings.ToUpper(args[0])); c.Valid() {
			display = c
			args = args[1:]
		}
	}

	filter := models.ProductFilter{Search: strings.Join(args, " ")}

	products, err := a.catalog.Products(ctx, filter)
	if err != nil {
		a.reportError(ctx, "could not load products", err)
		return err
	}

	return a.printProducts(ctx, products, display)
}

// MyProducts lists the products published by the signed-in company.
func (a *App) MyProducts(ctx context.Context) error {
	products, err := a.catalog.MyProducts(ctx)
	if err != nil {
		a.reportError(ctx, "could not load your products", err)
		return err
	}

	return a.printProducts(ctx, products, a.display)
}

// AddProduct interactively collects a product and publishes it.
func (a *App) AddProduct(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Product name", os.Stdout)
	if err != nil {
		return err
	}
	description, err := getMultiline(a.reader, "Description", os.Stdout)
	if err != nil {
		return err
	}
	price, err := a.promptFloat("Price")
	if err != nil {
		return err
	}
	currency, err := a.promptCurrency()
	if err != nil {
		return err
	}
	unit, err := getSimpleText(a.reader, "Unit (pcs, kg, t, ...)", os.Stdout)
	if err != nil {
		return err
	}
	categoryID, err := a.promptInt("Category id")
	if err != nil {
		return err
	}

	created, err := a.catalog.PublishProduct(ctx, models.Product{
		Name:        name,
		Description: description,
		Price:       price,
		Currency:    currency,
		Unit:        unit,
		CategoryID:  categoryID,
	})
	if err != nil {
		a.reportError(ctx, "could not publish product", err)
		return err
	}

	printlnFn(fmt.Sprintf("Published product [%d] %s", created.ID, created.Name))
	return nil
}

// Tenders browses open tenders.
func (a *App) Tenders(ctx context.Context) error {
	tenders, err := a.catalog.Tenders(ctx)
	if err != nil {
		a.reportError(ctx, "could not load tenders", err)
		return err
	}

	return a.printTenders(ctx, tenders)
}

// MyTenders lists the tenders published by the signed-in company.
func (a *App) MyTenders(ctx context.Context) error {
	tenders, err := a.catalog.MyTenders(ctx)
	if err != nil {
		a.reportError(ctx, "could not load your tenders", err)
		return err
	}

	return a.printTenders(ctx, tenders)
}

// AddTender interactively collects a tender and publishes it.
func (a *App) AddTender(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Tender title", os.Stdout)
	if err != nil {
		return err
	}
	description, err := getMultiline(a.reader, "Description", os.Stdout)
	if err != nil {
		return err
	}
	budget, err := a.promptFloat("Budget")
	if err != nil {
		return err
	}
	currency, err := a.promptCurrency()
	if err != nil {
		return err
	}
	categoryID, err := a.promptInt("Category id")
	if err != nil {
		return err
	}
	deadlineStr, err := getSimpleText(a.reader, "Deadline (YYYY-MM-DD)", os.Stdout)
	if err != nil {
		return err
	}
	deadline, err := time.Parse("2006-01-02", deadlineStr)
	if err != nil {
		printlnFn("Invalid date:", deadlineStr)
		return err
	}

	created, err := a.catalog.PublishTender(ctx, models.Tender{
		Title:       title,
		Description: description,
		Budget:      budget,
		Currency:    currency,
		CategoryID:  categoryID,
		Deadline:    deadline,
	})
	if err != nil {
		a.reportError(ctx, "could not publish tender", err)
		return err
	}

	printlnFn(fmt.Sprintf("Published tender [%d] %s", created.ID, created.Title))
	return nil
}

func (a *App) printProducts(ctx context.Context, products []models.Product, display models.Currency) error {
	prices, err := a.pricing.ProductPrices(ctx, products, display)
	if err != nil {
		a.reportError(ctx, "could not price products", err)
		return err
	}

	for i, p := range products {
		printlnFn(fmt.Sprintf("[%d] %s, %s / %s, %s", p.ID, p.Name, prices[i].Text, p.Unit, p.CompanyName))
	}
	return nil
}

func (a *App) printTenders(ctx context.Context, tenders []models.Tender) error {
	budgets, err := a.pricing.TenderBudgets(ctx, tenders, a.display)
	if err != nil {
		a.reportError(ctx, "could not price tenders", err)
		return err
	}

	for i, t := range tenders {
		printlnFn(fmt.Sprintf("[%d] %s, budget %s, %s, until %s",
			t.ID, t.Title, budgets[i].Text, t.Status, t.Deadline.Format("2006-01-02")))
	}
	return nil
}

func (a *App) promptFloat(prompt string) (float64, error) {
	text, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		printlnFn("Invalid number:", text)
		return 0, err
	}
	return v, nil
}

func (a *App) promptInt(prompt string) (int64, error) {
	text, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		printlnFn("Invalid number:", text)
		return 0, err
	}
	return v, nil
}

func (a *App) promptCurrency() (models.Currency, error) {
	text, err := getSimpleText(a.reader, "Currency (KZT, RUB, USD)", os.Stdout)
	if err != nil {
		return "", err
	}
	c := models.Currency(strings.ToUpper(text))
	if !c.Valid() {
		printlnFn("Unsupported currency:", text)
		return "", &models.ErrUnsupportedCurrency{Code: c}
	}
	return c, nil
}

package store

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mlefevre/boutique-api/pkg/models"
)

// demoProducts is the boot catalog. Image fields are file names under
// public/images/products/.
var demoProducts = []models.Product{
	{ID: "plante", Name: "Plante araignée", Price: decimal.RequireFromString("45.99"), Desc: "Plante d'intérieur facile d'entretien", Image: "plante.jpg", LongDesc: "La plante araignée tolère les oublis d'arrosage et purifie l'air. Livrée dans un pot de 6 pouces."},
	{ID: "panier", Name: "Panier en osier", Price: decimal.RequireFromString("7.95"), Desc: "Panier tressé à la main", Image: "panier.jpg", LongDesc: "Panier en osier tressé à la main, idéal pour le rangement ou les pique-niques."},
	{ID: "pomme", Name: "Pomme Spartan", Price: decimal.RequireFromString("0.85"), Desc: "Pomme croquante du Québec", Image: "pomme.jpg", LongDesc: "Pomme Spartan cultivée en Montérégie, croquante et sucrée."},
	{ID: "chandail", Name: "Chandail en laine", Price: decimal.RequireFromString("39.50"), Desc: "Chandail tricoté en laine mérinos", Image: "chandail.jpg", LongDesc: "Chandail chaud en laine mérinos, tricot torsadé, tailles S à XL."},
	{ID: "theiere", Name: "Théière en fonte", Price: decimal.RequireFromString("24.99"), Desc: "Théière de style japonais", Image: "theiere.jpg", LongDesc: "Théière en fonte émaillée de 0,8 L avec infuseur en acier inoxydable."},
	{ID: "savon", Name: "Savon artisanal", Price: decimal.RequireFromString("6.25"), Desc: "Savon à l'avoine et au miel", Image: "savon.jpg", LongDesc: "Savon fabriqué à froid avec de l'avoine, du miel et des huiles végétales."},
}

// Seed resets the three stores and installs the demo data: the boot
// catalog, a pre-filled cart for josbleau and one historical order for
// marcarcand. The demo order consumes id 1, so the first live order is 2.
func Seed(catalog *Catalog, carts *Carts, orders *Orders) {
	catalog.Reset()
	carts.Reset()
	orders.Reset()

	for _, p := range demoProducts {
		catalog.Add(p.ID, p)
	}

	carts.Replace("josbleau", []models.CartItem{
		{ProductID: "plante", Quantity: 1},
		{ProductID: "panier", Quantity: 2},
	})

	placedAt, _ := time.Parse(time.RFC3339, "2023-05-10T20:45:15-04:00")
	orders.Append(models.Order{
		UserID: "marcarcand",
		Cart: []models.OrderItem{
			{ProductID: "plante", Price: decimal.RequireFromString("45.99"), Quantity: 3},
			{ProductID: "panier", Price: decimal.RequireFromString("7.95"), Quantity: 5},
		},
		Paiement: models.Paiement{
			NomCarteCredit: "Marc Arcand",
			NoCarteCredit:  "4555 5555 5555 5555",
			ExpCarteCredit: "2024/01",
		},
		ModeExp: "purolator",
		Adresse: models.Adresse{
			Nom:        "Marc Arcand",
			Adresse:    "123 rue Nunchaku",
			Ville:      "Montréal",
			Province:   "QC",
			CodePostal: "1H1 H1H",
		},
		OrderDateTime: placedAt,
	})
}

package ocr

// Static extraction results modeled on realistic Swiss official
// correspondence: a Zurich cantonal tax bill, a CSS health insurance premium
// notice, and a Ticino residence permit renewal.

var germanTaxSample = Result{
	Text: `Kantonales Steueramt Zürich
Dienstabteilung Inkasso
Postfach, 8090 Zürich

Zürich, 15. Januar 2026
Referenznummer: 123.456.789.10

Betreff: Definitive Steuerrechnung 2024

Sehr geehrte Steuerpflichtige,

Gestützt auf die rechtskräftige Veranlagungsverfügung vom 20. Dezember 2025
stellen wir Ihnen folgende Steuerrechnung zu:

Staatssteuer 2024                          CHF  2'847.00
Gemeindesteuer 2024 (Steuerfuss 119%)      CHF  1'185.00
Direkte Bundessteuer 2024                  CHF    500.00
-------------------------------------------------------
Total                                      CHF  4'532.00

Zahlungsfrist: 30 Tage ab Datum dieser Rechnung

Nach Ablauf der Zahlungsfrist wird ein Verzugszins von 4.5% pro Jahr erhoben.

IBAN: CH93 0070 0110 0012 3456 7
Zahlungsreferenz: 123 456 789 10

Rechtsmittelbelehrung:
Gegen diese Verfügung kann innert 30 Tagen schriftlich Rekurs erhoben werden.

Freundliche Grüsse
Kantonales Steueramt Zürich`,
	Language:     LanguageGerman,
	Confidence:   0.92,
	DocumentType: TypeTax,
	Deadlines: []Deadline{
		{
			Description:     "Payment due",
			Date:            "2026-02-14",
			UrgencyLevel:    UrgencyStandard,
			ConsequenceHint: "Late payment interest of 4.5% per year will be charged",
		},
		{
			Description:     "Appeal deadline (Rekursfrist)",
			Date:            "2026-02-14",
			UrgencyLevel:    UrgencyStandard,
			ConsequenceHint: "Assessment becomes final if no appeal is filed",
		},
	},
	Amounts: []Amount{
		{Description: "Cantonal Tax (Staatssteuer)", Amount: "2'847.00", AmountNumeric: 2847.0, Currency: "CHF"},
		{Description: "Municipal Tax (Gemeindesteuer)", Amount: "1'185.00", AmountNumeric: 1185.0, Currency: "CHF"},
		{Description: "Federal Tax (Bundessteuer)", Amount: "500.00", AmountNumeric: 500.0, Currency: "CHF"},
		{Description: "Total Due", Amount: "4'532.00", AmountNumeric: 4532.0, Currency: "CHF", PaymentReference: "123 456 789 10"},
	},
	References: []Reference{
		{Type: "tax", Value: "123.456.789.10", Description: "Tax reference number"},
	},
	SenderAuthority: &SenderAuthority{
		Level:  "cantonal",
		Name:   "Kantonales Steueramt Zürich",
		Canton: "ZH",
	},
	ActionItems: []ActionItem{
		{
			Action:    "Pay tax bill of CHF 4,532.00",
			Deadline:  "2026-02-14",
			Documents: []string{"IBAN: CH93 0070 0110 0012 3456 7"},
		},
		{
			Action:    "File appeal if disputing assessment",
			Deadline:  "2026-02-14",
			Documents: []string{"Written appeal with grounds for objection"},
		},
	},
}

var frenchInsuranceSample = Result{
	Text: `CSS Assurance
Service clientèle
Case postale, 1002 Lausanne

Genève, le 10 janvier 2026
Numéro de police: A-987654321

Objet: Modification de prime LAMal 2026

Madame, Monsieur,

Suite à la publication des nouvelles primes d'assurance-maladie, nous vous
informons de vos cotisations pour l'année 2026.

Assurance obligatoire des soins (LAMal)
Modèle standard avec libre choix du médecin

Prime mensuelle 2026                       CHF    385.50
Franchise annuelle                         CHF  2'500.00
Quote-part (10%)                           max CHF 700.00

Réduction de prime (subside cantonal):     CHF    -85.00
-------------------------------------------------------
Prime mensuelle nette                      CHF    300.50

Début de validité: 1er janvier 2026

Vous pouvez bénéficier d'une réduction de prime supplémentaire en optant pour
un modèle alternatif (médecin de famille, HMO, Telmed). Contactez-nous pour
plus d'informations.

IBAN: CH81 0900 0000 1234 5678 9
Référence de paiement: 987654321

Délai de résiliation: 30 novembre pour l'année suivante

Avec nos salutations distinguées,
CSS Assurance`,
	Language:     LanguageFrench,
	Confidence:   0.89,
	DocumentType: TypeInsurance,
	Deadlines: []Deadline{
		{
			Description:  "Premium effective date",
			Date:         "2026-01-01",
			UrgencyLevel: UrgencyInformational,
		},
		{
			Description:     "Cancellation deadline for next year",
			Date:            "2026-11-30",
			UrgencyLevel:    UrgencyStandard,
			ConsequenceHint: "Must notify by November 30 to change insurer for next year",
		},
	},
	Amounts: []Amount{
		{Description: "Monthly Premium (before subsidy)", Amount: "385.50", AmountNumeric: 385.5, Currency: "CHF"},
		{Description: "Annual Deductible (Franchise)", Amount: "2'500.00", AmountNumeric: 2500.0, Currency: "CHF"},
		{Description: "Maximum Co-payment (Quote-part)", Amount: "700.00", AmountNumeric: 700.0, Currency: "CHF"},
		{Description: "Cantonal Subsidy (Réduction)", Amount: "-85.00", AmountNumeric: -85.0, Currency: "CHF"},
		{Description: "Net Monthly Premium", Amount: "300.50", AmountNumeric: 300.5, Currency: "CHF", PaymentReference: "987654321"},
	},
	References: []Reference{
		{Type: "invoice", Value: "A-987654321", Description: "Policy number"},
	},
	SenderAuthority: &SenderAuthority{
		Level:  "private",
		Name:   "CSS Assurance",
		Canton: "GE",
	},
	ActionItems: []ActionItem{
		{
			Action:    "Pay monthly premium of CHF 300.50",
			Documents: []string{"IBAN: CH81 0900 0000 1234 5678 9"},
		},
		{
			Action: "Consider switching to alternative model for lower premium",
		},
		{
			Action:   "Cancel by November 30 if changing insurer",
			Deadline: "2026-11-30",
		},
	},
}

var italianPermitSample = Result{
	Text: `Repubblica e Cantone Ticino
Sezione della popolazione
Ufficio della migrazione
Via Lugano 4, 6500 Bellinzona

Bellinzona, 5 gennaio 2026
Rif.: PM-TI-2026-12345

Oggetto: Rinnovo permesso di dimora B

Gentile Signora/Egregio Signore,

Con riferimento alla Sua domanda di rinnovo del permesso di dimora B,
La informiamo che la validità del Suo attuale permesso scade il:

Data di scadenza: 31 marzo 2026

Per procedere al rinnovo, La preghiamo di presentare i seguenti documenti
entro il 28 febbraio 2026:

1. Formulario di domanda compilato
2. Passaporto in corso di validità (originale + copia)
3. Foto formato passaporto recente
4. Attestazione del datore di lavoro
5. Estratto conto AVS degli ultimi 12 mesi
6. Certificato di non perseguimento penale

Tassa di rinnovo                           CHF    140.00
Tassa amministrativa                       CHF     25.00
-------------------------------------------------------
Totale                                     CHF    165.00

IBAN: CH56 0024 0024 1234 5678 9
Riferimento: PM-TI-2026-12345

Requisiti di integrazione:
- Conoscenza della lingua italiana livello A2 (parlato)
- Rispetto dell'ordine pubblico

In caso di mancato rinnovo entro i termini, il permesso decadrà
automaticamente.

Distinti saluti,
Sezione della popolazione`,
	Language:     LanguageItalian,
	Confidence:   0.88,
	DocumentType: TypePermit,
	Deadlines: []Deadline{
		{
			Description:     "Document submission deadline",
			Date:            "2026-02-28",
			UrgencyLevel:    UrgencyCritical,
			ConsequenceHint: "Permit will automatically expire if not renewed",
		},
		{
			Description:     "Permit expiry date",
			Date:            "2026-03-31",
			UrgencyLevel:    UrgencyCritical,
			ConsequenceHint: "Cannot legally stay/work in Switzerland after expiry",
		},
	},
	Amounts: []Amount{
		{Description: "Renewal Fee (Tassa di rinnovo)", Amount: "140.00", AmountNumeric: 140.0, Currency: "CHF"},
		{Description: "Administrative Fee (Tassa amministrativa)", Amount: "25.00", AmountNumeric: 25.0, Currency: "CHF"},
		{Description: "Total Due", Amount: "165.00", AmountNumeric: 165.0, Currency: "CHF", PaymentReference: "PM-TI-2026-12345"},
	},
	References: []Reference{
		{Type: "permit", Value: "PM-TI-2026-12345", Description: "Permit reference number"},
	},
	SenderAuthority: &SenderAuthority{
		Level:  "cantonal",
		Name:   "Sezione della popolazione - Ufficio della migrazione",
		Canton: "TI",
	},
	ActionItems: []ActionItem{
		{
			Action:   "Submit renewal application with required documents",
			Deadline: "2026-02-28",
			Documents: []string{
				"Completed application form",
				"Valid passport (original + copy)",
				"Recent passport photo",
				"Employer attestation",
				"AVS account statement (12 months)",
				"Certificate of no criminal prosecution",
			},
		},
		{
			Action:    "Pay renewal fees of CHF 165.00",
			Documents: []string{"IBAN: CH56 0024 0024 1234 5678 9"},
		},
		{
			Action: "Ensure Italian language level A2 (spoken)",
		},
	},
}

package notifications

// messages holds the email copy per language.
var messages = map[string]map[string]string{
	"en": {
		"rights":              "All rights reserved.",
		"greeting":            "Hi",
		"reference":           "Reference",
		"item":                "Item",
		"quantity":            "Qty",
		"rentalPeriod":        "Rental period",
		"days":                "days",
		"project":             "Project",
		"requests":            "Special requests",
		"linkNote":            "This link is unique to your quote. Do not share it with others.",
		"confirmationSubject": "Quote Request Received",
		"confirmationTitle":   "We received your quote request",
		"confirmationIntro":   "thank you for your request. Our team is reviewing it and will send you a personalized quote shortly.",
		"trackQuote":          "Track your quote",
		"readySubject":        "Your Quote is Ready",
		"readyTitle":          "Your Quote is Ready!",
		"readyIntro":          "your personalized quote has been prepared and is ready for your review. Reference",
		"viewQuote":           "View Your Quote",
		"nextTitle":           "What happens next?",
		"nextView":            "Click the link above to view your detailed quote",
		"nextDownload":        "Download the official PDF document",
		"nextReply":           "Reply to this email if you have any questions",
		"adminSubject":        "New Quote Request",
		"name":                "Name",
		"email":               "Email",
		"phone":               "Phone",
		"company":             "Company",
		"openAdmin":           "Open in admin",
	},
	"fr": {
		"rights":              "Tous droits réservés.",
		"greeting":            "Bonjour",
		"reference":           "Référence",
		"item":                "Article",
		"quantity":            "Qté",
		"rentalPeriod":        "Période de location",
		"days":                "jours",
		"project":             "Projet",
		"requests":            "Demandes particulières",
		"linkNote":            "Ce lien est propre à votre devis. Ne le partagez pas.",
		"confirmationSubject": "Demande de devis reçue",
		"confirmationTitle":   "Nous avons bien reçu votre demande",
		"confirmationIntro":   "merci pour votre demande. Notre équipe l'étudie et vous enverra un devis personnalisé sous peu.",
		"trackQuote":          "Suivre mon devis",
		"readySubject":        "Votre devis est prêt",
		"readyTitle":          "Votre devis est prêt !",
		"readyIntro":          "votre devis personnalisé a été préparé et vous attend. Référence",
		"viewQuote":           "Voir mon devis",
		"nextTitle":           "Et ensuite ?",
		"nextView":            "Cliquez sur le lien ci-dessus pour consulter le détail de votre devis",
		"nextDownload":        "Téléchargez le document PDF officiel",
		"nextReply":           "Répondez à cet e-mail pour toute question",
		"adminSubject":        "Nouvelle demande de devis",
		"name":                "Nom",
		"email":               "E-mail",
		"phone":               "Téléphone",
		"company":             "Société",
		"openAdmin":           "Ouvrir dans l'admin",
	},
}

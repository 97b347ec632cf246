package classifier

import "lawbandhu-backend/models"

const nonLegalRefusal = `**Law Bandhu Legal Assistant**

I apologize, but I'm a specialized Legal Assistant designed exclusively for legal matters and law-related queries.

I can only provide guidance on:
✓ **Property Law** - Real estate, land disputes, rental agreements
✓ **Contract Law** - Agreements, business contracts, breach of contract
✓ **Family Law** - Divorce, custody, marriage, adoption
✓ **Criminal Law** - Legal rights, arrests, charges, defense
✓ **Employment Law** - Labor rights, workplace disputes, termination
✓ **Consumer Law** - Product liability, warranties, complaints
✓ **Civil Law** - Disputes, damages, compensation
✓ **Corporate Law** - Company formation, partnerships, compliance
✓ **Cyber Law** - Online fraud, data theft, cyber harassment
✓ **Intellectual Property** - Trademarks, patents, copyrights

**Please ask me a legal question, and I'll be happy to help!**

Example questions:
- "What are my rights as a tenant?"
- "How do I file a consumer complaint?"
- "What is the process for property registration?"
- "What should I do if arrested?"`

// NonLegalRefusalMessage is shown instead of an answer when a query is
// definitively outside the legal domain.
func NonLegalRefusalMessage() string {
	return nonLegalRefusal
}

// GenericSpecialist is the description used when no practice area is known.
const GenericSpecialist = "a legal professional"

var fieldDescriptions = map[models.LegalField]string{
	models.FieldProperty:             "a property law specialist experienced in property disputes, real estate transactions, landlord-tenant issues, and property rights",
	models.FieldFamily:               "a family law specialist experienced in divorce, child custody, maintenance, adoption, and domestic relations",
	models.FieldCriminal:             "a criminal law specialist experienced in criminal defense, bail applications, FIR matters, and criminal proceedings",
	models.FieldContract:             "a contract law specialist experienced in contract disputes, breach of agreements, and commercial contracts",
	models.FieldEmployment:           "an employment law specialist experienced in wrongful termination, workplace harassment, salary disputes, and labor rights",
	models.FieldConsumer:             "a consumer law specialist experienced in consumer complaints, product defects, refunds, and consumer protection",
	models.FieldCivil:                "a civil law specialist experienced in civil disputes, compensation claims, and tort matters",
	models.FieldCorporate:            "a corporate law specialist experienced in business formation, corporate compliance, and commercial matters",
	models.FieldCyber:                "a cyber law specialist experienced in cybercrime, online harassment, data protection, and digital rights",
	models.FieldIntellectualProperty: "an intellectual property specialist experienced in trademarks, patents, copyrights, and IP protection",
}

// DescribeField names the kind of specialist to consult for field.
func DescribeField(field models.LegalField) string {
	if desc, ok := fieldDescriptions[field]; ok {
		return desc
	}
	return GenericSpecialist
}

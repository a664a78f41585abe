package content

import "github.com/kambari/kambari-agent/pkg/core/model"

// WomenOfFaithTitle is the display title of the built-in series
const WomenOfFaithTitle = "Women of Faith"

// WomenOfFaithPlan returns the built-in content plan for the Women of Faith
// series: one passage per session, in study order.
func WomenOfFaithPlan() []model.ContentEntry {
	return []model.ContentEntry{
		{Title: "Hagar: Seen by God", Passage: "Genesis 16:1-16; 21:8-21"},
		{Title: "Shiphrah & Puah: Courageous Midwives", Passage: "Exodus 1:15-2:10"},
		{Title: "Rahab: Faith in Action", Passage: "Joshua 2:1-24; 6:22-25"},
		{Title: "Deborah: Prophetess and Leader", Passage: "Judges 4:1-5:31"},
		{Title: "Ruth: Loyalty and Redemption", Passage: "Ruth 1:1-4:22"},
		{Title: "Hannah: A Prayerful Heart", Passage: "1 Samuel 1:1-2:11"},
		{Title: "Huldah: The Forgotten Prophetess", Passage: "2 Kings 22:14-20"},
		{Title: "Esther: For Such a Time as This", Passage: "Esther 1:1-10:3"},
		{Title: "Mary: Favored by God", Passage: "Luke 1:26-56"},
		{Title: "Anna: Faithful Witness", Passage: "Luke 2:36-38"},
		{Title: "The Woman at the Well: Transformed by Truth", Passage: "John 4:1-42"},
		{Title: "Touching the Hem: A Leap of Faith", Passage: "Luke 8:43-48"},
		{Title: "Mary: Extravagant Worship", Passage: "John 12:1-8"},
		{Title: "Dorcas: Full of Good Works", Passage: "Acts 9:36-42"},
		{Title: "Lydia: A Woman of Influence", Passage: "Acts 16:11-15, 40"},
		{Title: "Priscilla: Teacher of the Faith", Passage: "Acts 18:24-28"},
		{Title: "The Chosen Lady: A Faithful Leader", Passage: "2 John 1:1-13"},
		{Title: "Sarah: A Woman of Faith", Passage: "1 Peter 3:1-6"},
		{Title: "Lois and Eunice: A Legacy of Faith", Passage: "2 Timothy 1:5"},
		{Title: "Euodia and Syntyche: Resolving Conflict", Passage: "Philippians 4:2-3"},
		{Title: "Phoebe: A Servant of the Church", Passage: "Romans 16:1-2"},
		{Title: "Mary: A Woman Who Worked Hard", Passage: "Romans 16:6"},
		{Title: "Junia: Outstanding Among the Apostles", Passage: "Romans 16:7"},
		{Title: "Women Who Worked Hard in the Lord", Passage: "Romans 16:12"},
		{Title: "Julia and the Sister of Nereus: Faithful Saints", Passage: "Romans 16:15"},
	}
}

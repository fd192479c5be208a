package vsop87d

import "github.com/litescript/vsop87"

// VSOP87D series for Uranus, truncated to the leading published terms.
// Latitude stops at power 4 and the radius vector at power 3 in the
// published theory; the missing slots stay nil.
var uranusModel = vsop87.Model{
	L: [6]terms{
		{ // L0
			{Amp: 5.48129294297, Phase: 0.00000000000, Freq: 0.00000000000},
			{Amp: 0.09260408234, Phase: 0.89106421507, Freq: 74.78159856730},
			{Amp: 0.01504247898, Phase: 3.62719260920, Freq: 1.48447270830},
			{Amp: 0.00365981674, Phase: 1.89962179044, Freq: 73.29712585900},
			{Amp: 0.00272328168, Phase: 3.35823706307, Freq: 149.56319713460},
			{Amp: 0.00070328461, Phase: 5.39254450063, Freq: 63.73589830340},
			{Amp: 0.00068892678, Phase: 6.09292483287, Freq: 76.26607127560},
			{Amp: 0.00061998615, Phase: 2.26952066061, Freq: 2.96894541660},
			{Amp: 0.00061950719, Phase: 2.85098872691, Freq: 11.04570026390},
			{Amp: 0.00026468770, Phase: 3.14152083966, Freq: 71.81265315070},
			{Amp: 0.00025710476, Phase: 6.11379840493, Freq: 454.90936652730},
			{Amp: 0.00021078850, Phase: 4.36059339067, Freq: 148.07872442630},
			{Amp: 0.00017818647, Phase: 1.74436930289, Freq: 36.64856292950},
			{Amp: 0.00014613507, Phase: 4.73732166022, Freq: 3.93215326310},
			{Amp: 0.00011162509, Phase: 5.82681796680, Freq: 224.34479570190},
			{Amp: 0.00010997910, Phase: 0.48865004018, Freq: 138.51749687070},
			{Amp: 0.00009527478, Phase: 2.95516862826, Freq: 35.16409022120},
			{Amp: 0.00007545601, Phase: 5.23626582400, Freq: 109.94568878850},
			{Amp: 0.00004220241, Phase: 3.23328220918, Freq: 70.84944530420},
			{Amp: 0.00004051900, Phase: 2.27755017300, Freq: 151.04766984290},
			{Amp: 0.00003354596, Phase: 1.06549007380, Freq: 4.45341812490},
			{Amp: 0.00003490340, Phase: 5.48306144511, Freq: 146.59425171800},
			{Amp: 0.00003144069, Phase: 4.75199570434, Freq: 77.75054398390},
			{Amp: 0.00002926718, Phase: 4.62903718891, Freq: 9.56122755560},
			{Amp: 0.00002922333, Phase: 5.35235361027, Freq: 85.82729883120},
			{Amp: 0.00002272788, Phase: 4.36600400036, Freq: 70.32818044240},
			{Amp: 0.00002148602, Phase: 0.60745949945, Freq: 38.13303563780},
			{Amp: 0.00002051219, Phase: 1.51773566586, Freq: 0.11187458460},
			{Amp: 0.00001991643, Phase: 4.92437588682, Freq: 277.03499374140},
			{Amp: 0.00001666902, Phase: 3.62744066769, Freq: 380.12776796000},
			{Amp: 0.00001376226, Phase: 2.04283539351, Freq: 65.22037101170},
			{Amp: 0.00001284107, Phase: 3.11347961505, Freq: 202.25339517410},
			{Amp: 0.00001150429, Phase: 0.93343589092, Freq: 3.18139373770},
		},
		{ // L1
			{Amp: 75.02543121646, Phase: 0.00000000000, Freq: 0.00000000000},
			{Amp: 0.00154458244, Phase: 5.24201658072, Freq: 74.78159856730},
			{Amp: 0.00024456413, Phase: 1.71255705309, Freq: 36.64856292950},
			{Amp: 0.00009258152, Phase: 0.42844639064, Freq: 11.04570026390},
			{Amp: 0.00009150398, Phase: 1.41554991725, Freq: 149.56319713460},
			{Amp: 0.00008265977, Phase: 1.50220035110, Freq: 63.73589830340},
			{Amp: 0.00003899589, Phase: 0.46483574024, Freq: 3.93215326310},
			{Amp: 0.00002277095, Phase: 4.17367533997, Freq: 76.26607127560},
			{Amp: 0.00001927293, Phase: 0.53013080152, Freq: 2.96894541660},
			{Amp: 0.00001232682, Phase: 1.58634458237, Freq: 70.84944530420},
		},
		{ // L2
			{Amp: 0.00002349469, Phase: 2.26708640433, Freq: 74.78159856730},
			{Amp: 0.00000848806, Phase: 3.14159265359, Freq: 0.00000000000},
			{Amp: 0.00000768983, Phase: 4.52764961441, Freq: 11.04570026390},
			{Amp: 0.00000551555, Phase: 3.25790071684, Freq: 63.73589830340},
			{Amp: 0.00000541559, Phase: 2.27655037030, Freq: 3.93215326310},
			{Amp: 0.00000529492, Phase: 4.92341144988, Freq: 1.48447270830},
		},
		{ // L3
			{Amp: 0.00000114338, Phase: 0.51329842875, Freq: 74.78159856730},
			{Amp: 0.00000102884, Phase: 5.48443329692, Freq: 63.73589830340},
		},
		{ // L4
			{Amp: 0.00000012417, Phase: 3.14159265359, Freq: 0.00000000000},
		},
		{ // L5
			{Amp: 0.00000000143, Phase: 4.70566676794, Freq: 74.78159856730},
		},
	},
	B: [6]terms{
		{ // B0
			{Amp: 0.01346277648, Phase: 2.61877810547, Freq: 74.78159856730},
			{Amp: 0.00062341400, Phase: 5.08111189648, Freq: 149.56319713460},
			{Amp: 0.00061601196, Phase: 3.14159265359, Freq: 0.00000000000},
			{Amp: 0.00009963722, Phase: 1.61603805646, Freq: 76.26607127560},
			{Amp: 0.00009926160, Phase: 0.57630380333, Freq: 73.29712585900},
			{Amp: 0.00003259466, Phase: 1.26119342526, Freq: 224.34479570190},
			{Amp: 0.00002972318, Phase: 2.24367206357, Freq: 1.48447270830},
			{Amp: 0.00002010257, Phase: 6.05550884547, Freq: 148.07872442630},
			{Amp: 0.00001522172, Phase: 0.27959645002, Freq: 63.73589830340},
			{Amp: 0.00000924055, Phase: 4.03822512696, Freq: 151.04766984290},
		},
		{ // B1
			{Amp: 0.00206366162, Phase: 4.12394311407, Freq: 74.78159856730},
			{Amp: 0.00008563230, Phase: 0.33819986165, Freq: 149.56319713460},
			{Amp: 0.00001725703, Phase: 2.12193159895, Freq: 73.29712585900},
			{Amp: 0.00001374449, Phase: 0.00000000000, Freq: 0.00000000000},
			{Amp: 0.00001368860, Phase: 3.06861722047, Freq: 76.26607127560},
		},
		{ // B2
			{Amp: 0.00009211656, Phase: 5.80044305785, Freq: 74.78159856730},
			{Amp: 0.00000556926, Phase: 0.00000000000, Freq: 0.00000000000},
			{Amp: 0.00000286265, Phase: 2.17729776353, Freq: 149.56319713460},
		},
		{ // B3
			{Amp: 0.00000267832, Phase: 1.25097888291, Freq: 74.78159856730},
		},
		{ // B4
			{Amp: 0.00000005719, Phase: 2.85499529315, Freq: 74.78159856730},
		},
		nil, // B5 unpopulated for Uranus
	},
	R: [6]terms{
		{ // R0
			{Amp: 19.21264847206, Phase: 0.00000000000, Freq: 0.00000000000},
			{Amp: 0.88784984413, Phase: 5.60377527014, Freq: 74.78159856730},
			{Amp: 0.03440836062, Phase: 0.32836099706, Freq: 73.29712585900},
			{Amp: 0.02055653860, Phase: 1.78295159330, Freq: 149.56319713460},
			{Amp: 0.00649322410, Phase: 4.52247285911, Freq: 76.26607127560},
			{Amp: 0.00602247865, Phase: 3.86003823674, Freq: 63.73589830340},
			{Amp: 0.00496404167, Phase: 1.40139935333, Freq: 454.90936652730},
			{Amp: 0.00338525369, Phase: 1.58002770318, Freq: 138.51749687070},
			{Amp: 0.00243509114, Phase: 1.57086606044, Freq: 71.81265315070},
			{Amp: 0.00190522303, Phase: 1.99809394714, Freq: 1.48447270830},
			{Amp: 0.00161858838, Phase: 2.79137786799, Freq: 148.07872442630},
			{Amp: 0.00143706183, Phase: 1.38368544947, Freq: 11.04570026390},
			{Amp: 0.00093192405, Phase: 0.17437220467, Freq: 36.64856292950},
			{Amp: 0.00089806014, Phase: 3.66105364565, Freq: 109.94568878850},
			{Amp: 0.00071424548, Phase: 4.24509236074, Freq: 224.34479570190},
			{Amp: 0.00046677296, Phase: 1.39976401694, Freq: 35.16409022120},
			{Amp: 0.00039025624, Phase: 3.36234773834, Freq: 277.03499374140},
			{Amp: 0.00039009723, Phase: 1.66971401684, Freq: 70.84944530420},
			{Amp: 0.00036755274, Phase: 3.88649278513, Freq: 146.59425171800},
			{Amp: 0.00030348723, Phase: 0.70100838798, Freq: 151.04766984290},
			{Amp: 0.00029156413, Phase: 3.18056336700, Freq: 77.75054398390},
			{Amp: 0.00025620756, Phase: 5.25656086672, Freq: 380.12776796000},
			{Amp: 0.00022637073, Phase: 0.72518687029, Freq: 529.69096509460},
			{Amp: 0.00011959076, Phase: 1.75043392140, Freq: 984.60033162190},
		},
		{ // R1
			{Amp: 0.01479896629, Phase: 3.67205697578, Freq: 74.78159856730},
			{Amp: 0.00071212143, Phase: 6.22600975161, Freq: 63.73589830340},
			{Amp: 0.00068627245, Phase: 6.13411179902, Freq: 149.56319713460},
			{Amp: 0.00024059369, Phase: 3.14159265359, Freq: 0.00000000000},
			{Amp: 0.00021468362, Phase: 2.60176704270, Freq: 76.26607127560},
			{Amp: 0.00020857554, Phase: 5.24625494219, Freq: 11.04570026390},
			{Amp: 0.00011405056, Phase: 0.01848461561, Freq: 70.84944530420},
			{Amp: 0.00007496797, Phase: 0.42360033283, Freq: 73.29712585900},
			{Amp: 0.00004243800, Phase: 1.41692350371, Freq: 85.82729883120},
			{Amp: 0.00003926694, Phase: 3.15526349399, Freq: 71.81265315070},
			{Amp: 0.00003578446, Phase: 2.31157935775, Freq: 224.34479570190},
			{Amp: 0.00003505936, Phase: 2.58354048851, Freq: 138.51749687070},
			{Amp: 0.00003228835, Phase: 5.25499602896, Freq: 3.93215326310},
			{Amp: 0.00003060010, Phase: 0.15321893225, Freq: 1.48447270830},
		},
		{ // R2
			{Amp: 0.00022439904, Phase: 0.69953310903, Freq: 74.78159856730},
			{Amp: 0.00004727037, Phase: 1.69901641488, Freq: 63.73589830340},
			{Amp: 0.00002838780, Phase: 3.14159265359, Freq: 0.00000000000},
			{Amp: 0.00001681903, Phase: 4.64833551727, Freq: 70.84944530420},
			{Amp: 0.00001650764, Phase: 3.09660078980, Freq: 11.04570026390},
			{Amp: 0.00001433730, Phase: 3.52119917947, Freq: 149.56319713460},
		},
		{ // R3
			{Amp: 0.00001164382, Phase: 4.73453291602, Freq: 74.78159856730},
			{Amp: 0.00000212367, Phase: 3.34225386489, Freq: 63.73589830340},
			{Amp: 0.00000196408, Phase: 2.98004616318, Freq: 70.84944530420},
			{Amp: 0.00000104527, Phase: 0.95804507185, Freq: 11.04570026390},
		},
		nil, // R4 unpopulated for Uranus
	},
}
